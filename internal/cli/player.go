package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player registry commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerLoginCmd())
	cmd.AddCommand(newPlayerGetCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var user, name, surname, gender, birthDate, address, email, pass string
	var age int
	var iconID int64

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" || name == "" || pass == "" {
				return fmt.Errorf("--user, --name, and --pass are required")
			}

			req := map[string]any{
				"username": user,
				"name":     name,
				"password": pass,
			}
			if surname != "" {
				req["surname"] = surname
			}
			if gender != "" {
				req["gender"] = gender
			}
			if birthDate != "" {
				req["b_date"] = birthDate
			}
			if age != 0 {
				req["age"] = age
			}
			if address != "" {
				req["address"] = address
			}
			if email != "" {
				req["email"] = email
			}
			if iconID != 0 {
				req["icon_id"] = iconID
			}

			var result Player
			if err := client.Post("/players/RegisterPlayer", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&name, "name", "", "First name (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&surname, "surname", "", "Surname")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender: male, female")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&age, "age", 0, "Age")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().Int64Var(&iconID, "icon", 0, "Icon id")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newPlayerLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials for an existing player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" || pass == "" {
				return fmt.Errorf("--user and --pass are required")
			}

			req := map[string]string{
				"username": user,
				"password": pass,
			}

			var result Player
			if err := client.Post("/players/LoginPlayer", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a player's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			var result Player
			if err := client.Get("/players/GetPlayer?username="+url.QueryEscape(user), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

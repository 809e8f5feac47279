package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newAchievementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievement",
		Short: "Achievement catalog and grant commands",
	}

	cmd.AddCommand(newAchievementListCmd())
	cmd.AddCommand(newAchievementGrantCmd())
	cmd.AddCommand(newAchievementPlayerCmd())

	return cmd
}

func newAchievementListCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the achievement catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/achievements/GetAllAchievements"
			if id != 0 {
				path += "?id=" + strconv.FormatInt(id, 10)
			}

			var result []Achievement
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Show a single achievement by id")

	return cmd
}

func newAchievementGrantCmd() *cobra.Command {
	var user string
	var id int64

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant an achievement to a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" || id == 0 {
				return fmt.Errorf("--user and --id are required")
			}

			req := map[string]any{
				"username":       user,
				"achievement_id": id,
			}

			var msg MessageResult
			if err := client.Post("/achievements/AddPlayerAchievement", req, &msg); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().Int64Var(&id, "id", 0, "Achievement id (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newAchievementPlayerCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "player",
		Short: "List a player's achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			var result []Achievement
			if err := client.Get("/achievements/GetPlayerAchievements?username="+url.QueryEscape(user), &result); err != nil {
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

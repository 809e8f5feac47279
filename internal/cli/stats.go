package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show a player's aggregate statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if user == "" {
				return fmt.Errorf("--user is required")
			}

			var result PlayerStats
			if err := client.Get("/stats/GetPlayerStats/"+url.PathEscape(user), &result); err != nil {
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

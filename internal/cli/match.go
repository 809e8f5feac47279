package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match lifecycle commands",
	}

	cmd.AddCommand(newMatchCreateCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchJoinCmd())
	cmd.AddCommand(newMatchPlayersCmd())
	cmd.AddCommand(newMatchRoleCmd())
	cmd.AddCommand(newMatchEndCmd())

	return cmd
}

func newMatchCreateCmd() *cobra.Command {
	var matchID, gamePass string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new match",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if matchID != "" {
				req["match_id"] = matchID
			}
			if gamePass != "" {
				req["game_pass"] = gamePass
			}

			var result Match
			if err := client.Post("/games/CreateMatch", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&matchID, "id", "", "Match id (generated when omitted)")
	cmd.Flags().StringVar(&gamePass, "pass", "", "Game pass (makes the match private)")

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	var matchID string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matchID == "" {
				return fmt.Errorf("--id is required")
			}

			var result Match
			if err := client.Get("/games/GetMatch?match_id="+url.QueryEscape(matchID), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&matchID, "id", "", "Match id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newMatchJoinCmd() *cobra.Command {
	var matchID, user, team, gamePass string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Add a player to a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matchID == "" || user == "" || team == "" {
				return fmt.Errorf("--id, --user, and --team are required")
			}

			req := map[string]string{
				"username": user,
				"match_id": matchID,
				"team":     team,
			}
			if gamePass != "" {
				req["game_pass"] = gamePass
			}

			var result Participant
			if err := client.Post("/games/AddPlayerToMatch", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&matchID, "id", "", "Match id (required)")
	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&team, "team", "", "Team: TEAM1, TEAM2 (required)")
	cmd.Flags().StringVar(&gamePass, "pass", "", "Game pass for private matches")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newMatchPlayersCmd() *cobra.Command {
	var matchID string

	cmd := &cobra.Command{
		Use:   "players",
		Short: "List the roster of a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matchID == "" {
				return fmt.Errorf("--id is required")
			}

			var result []Participant
			if err := client.Get("/games/GetMatchPlayers?match_id="+url.QueryEscape(matchID), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&matchID, "id", "", "Match id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newMatchRoleCmd() *cobra.Command {
	var matchID, user, role string
	var round int

	cmd := &cobra.Command{
		Use:   "role",
		Short: "Assign a player's role for a round",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matchID == "" || user == "" || role == "" {
				return fmt.Errorf("--id, --user, and --role are required")
			}

			req := map[string]any{
				"username": user,
				"match_id": matchID,
				"round":    round,
				"role":     role,
			}

			var result Participant
			if err := client.Put("/games/ChangePlayerRole", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&matchID, "id", "", "Match id (required)")
	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().IntVar(&round, "round", 1, "Round number: 1-3")
	cmd.Flags().StringVar(&role, "role", "", "Role: MANAGER, MINER, WARRIOR (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newMatchEndCmd() *cobra.Command {
	var matchID, team, result string

	cmd := &cobra.Command{
		Use:   "end",
		Short: "Record the outcome of a match",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matchID == "" || team == "" || result == "" {
				return fmt.Errorf("--id, --team, and --result are required")
			}

			req := map[string]string{
				"match_id":    matchID,
				"team":        team,
				"win_or_lose": result,
			}

			var msg MessageResult
			if err := client.Put("/games/EndGame", req, &msg); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&matchID, "id", "", "Match id (required)")
	cmd.Flags().StringVar(&team, "team", "", "Team: TEAM1, TEAM2 (required)")
	cmd.Flags().StringVar(&result, "result", "", "Result for the team: WIN, LOSE (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}

package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newIconCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Icon catalog commands",
	}

	cmd.AddCommand(newIconListCmd())

	return cmd
}

func newIconListCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the icon catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != 0 {
				var result Icon
				if err := client.Get("/icons/GetIcon?id="+strconv.FormatInt(id, 10), &result); err != nil {
					return err
				}
				NewOutput(cfg.Output).Print(result)
				return nil
			}

			var result []Icon
			if err := client.Get("/icons/GetIcon", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Show a single icon by id")

	return cmd
}

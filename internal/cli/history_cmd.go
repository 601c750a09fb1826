package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert a week of random sample logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Logs.SeedWeek(cmd.Context(), userID, app.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d sample entries for user %d\n", n, userID)
			return nil
		},
	}

	addUserFlag(cmd, &userID)
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var userID int64
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all water, food and workout logs of a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete history without --yes")
			}
			n, err := app.Logs.ClearHistory(cmd.Context(), userID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries for user %d\n", n, userID)
			return nil
		},
	}

	addUserFlag(cmd, &userID)
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/healthbot/internal/formatter"
)

func newProgressCmd(app *App) *cobra.Command {
	var userID int64
	var week bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show today's or the last week's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			styled := !plain && app.IsInteractive()
			out := cmd.OutOrStdout()

			if week {
				w, err := app.Progress.Week(ctx, userID, app.Now())
				if err != nil {
					return err
				}
				if styled {
					fmt.Fprintln(out, formatter.WeekStyled(w))
				} else {
					fmt.Fprintln(out, formatter.Week(w))
				}
				return nil
			}

			p, err := app.Progress.Today(ctx, userID, app.Now())
			if err != nil {
				return err
			}
			if styled {
				fmt.Fprintln(out, formatter.TodayStyled(p))
			} else {
				fmt.Fprintln(out, formatter.Today(p))
			}
			return nil
		},
	}

	addUserFlag(cmd, &userID)
	cmd.Flags().BoolVar(&week, "week", false, "Summarize the last 7 days")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors")

	return cmd
}

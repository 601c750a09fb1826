package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/healthbot/internal/db"
)

func newMigrateCmd(app *App) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and print the schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if down {
				err = db.MigrateDown(app.DB)
			} else {
				err = db.Migrate(app.DB)
			}
			if err != nil {
				return err
			}
			v, err := db.SchemaVersion(app.DB)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", v)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Roll back the most recent migration")
	return cmd
}

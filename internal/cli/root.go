package cli

import (
	"github.com/spf13/cobra"
)

// defaultUserID identifies the local terminal user when --user is omitted.
const defaultUserID int64 = 1

// NewRootCmd creates the top-level "healthbot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "healthbot",
		Short:         "Water, food and workout tracker with a Telegram front end",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newBotCmd(app),
		newChatCmd(app),
		newProfileCmd(app),
		newProgressCmd(app),
		newSeedCmd(app),
		newResetCmd(app),
		newMigrateCmd(app),
	)

	return root
}

func addUserFlag(cmd *cobra.Command, userID *int64) {
	cmd.Flags().Int64Var(userID, "user", defaultUserID, "User id to act as")
}

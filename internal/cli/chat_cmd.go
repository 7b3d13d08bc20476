package cli

import (
	"fmt"

	"github.com/alexanderramin/stride/internal/engine"
	"github.com/alexanderramin/stride/internal/repository"
	"github.com/alexanderramin/stride/internal/transport"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newChatCmd(app *App) *cobra.Command {
	var ownerID int64

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the tracker in this terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat needs an interactive terminal")
			}

			term := transport.NewTerminal()
			eng := engine.New(repository.NewSQLiteGoalRepo(app.DB), term, app.Log)
			disp := engine.NewDispatcher(eng, app.Log)
			defer disp.Close()

			return term.Run(ownerID, ownerID, disp.SubmitText, disp.SubmitAction)
		},
	}

	registerChatFlags(cmd.Flags(), app, &ownerID)
	return cmd
}

func registerChatFlags(fs *pflag.FlagSet, app *App, ownerID *int64) {
	fs.Int64Var(ownerID, "user", app.Cfg.OwnerID, "owner id the chat acts as")
}

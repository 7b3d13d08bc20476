package cli

import (
	"database/sql"

	"github.com/alexanderramin/stride/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds the shared dependencies CLI commands wire together.
type App struct {
	Cfg config.Config
	DB  *sql.DB
	Log *zap.Logger

	// IsInteractive reports whether stdin is a terminal; the chat command
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "stride" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "stride",
		Short: "Conversational goal tracker",
	}

	root.AddCommand(
		newChatCmd(app),
	)

	return root
}

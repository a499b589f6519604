package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enunezf/dbconsole/internal/adapters/console"
	"github.com/enunezf/dbconsole/internal/config"
	"github.com/enunezf/dbconsole/internal/core/domain"
	"github.com/enunezf/dbconsole/internal/core/ports"
	"github.com/enunezf/dbconsole/internal/core/services"
)

var (
	// Database selection, shared by console and connect
	dbName string

	// Console command flags
	listDatabases bool

	// newRunner creates the process runner; tests replace it
	newRunner = func() ports.Runner { return console.NewExecRunner() }
)

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:     "console",
	Aliases: []string{"cli"},
	Short:   "Open the interactive console of a configured database",
	Long: `Open the interactive console of a configured database.

The console is chosen from the driver scheme of the database url:
  sqlite://...       litecli
  postgresql://...   pgcli
  mysql://...        mycli

--db may be omitted when exactly one database is configured. The MySQL
password is read from MYSQLPASSWORD and handed to mycli through a temporary
file that is deleted when the console exits.

Examples:
  # Open the only configured database
  dbconsole console

  # Open a named database
  dbconsole console --db analytics

  # List the databases of the server instead of opening a session
  dbconsole console --db analytics -l`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().StringVar(&dbName, "db", "", "Name of the database section")
	consoleCmd.Flags().BoolVarP(&listDatabases, "list", "l", false, "List the databases")
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if !cfg.Console.Activated {
		return fmt.Errorf("%w (see console.activated in %s)", domain.ErrConsoleDisabled, cfg.Path)
	}

	launcher, err := newLauncher(cfg, newLogger(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	code, err := launcher.Launch(cmd.Context(), dbName, domain.LaunchOptions{ListDatabases: listDatabases})
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// newLauncher wires the three consoles into a launcher
func newLauncher(cfg *config.Config, logger ports.Logger) (*services.Launcher, error) {
	lite, err := console.NewLiteCLI(cfg.Console, console.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	pg, err := console.NewPgCLI(cfg.Console, console.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	my, err := console.NewMyCLI(cfg.Console, console.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return services.NewLauncher(cfg, newRunner(),
		services.WithLogger(logger),
		services.WithAdapter(lite),
		services.WithAdapter(pg),
		services.WithAdapter(my),
	)
}

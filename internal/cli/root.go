// Package cli provides the command-line interface for dbconsole.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dracory/env"
	"github.com/spf13/cobra"

	"github.com/enunezf/dbconsole/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Version information
	version = "0.1.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dbconsole",
	Short: "dbconsole - interactive consoles for configured databases",
	Long: `dbconsole opens the interactive console matching a configured database:
litecli for SQLite, pgcli for PostgreSQL and mycli for MySQL/MariaDB.

Databases and the console look (key bindings, colors, table format) are
defined once in a YAML configuration file and applied to every console.

Example:
  dbconsole console --db analytics`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// ExitError carries the exit status of a console that did not exit cleanly
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("console exited with status %d", e.Code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Missing .env files are ignored
	env.Load(".env")

	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitCode(exitErr.Code))
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default $"+config.PathEnv+" or "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
}

// loadConfig reads the configuration selected by the global flags
func loadConfig() (*config.Config, error) {
	path, err := config.ResolvePath(configPath)
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// newLogger returns the logger for the global verbosity
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// exitCode maps a console status to a process status; signals report -1
func exitCode(code int) int {
	if code <= 0 || code > 255 {
		return 1
	}
	return code
}

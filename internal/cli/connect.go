package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/enunezf/dbconsole/internal/adapters/console"
	"github.com/enunezf/dbconsole/internal/adapters/sqldb"
	"github.com/enunezf/dbconsole/internal/core/domain"
	"github.com/enunezf/dbconsole/internal/core/services"
)

// connectCmd represents the connect command
var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Test connection to a configured database",
	Long: `Test the connection to a configured database and display the server version.

This command opens the database with the built-in Go driver for its family,
so it works without the external consoles installed. The --db selection
rules are the same as for the console command.

Examples:
  # Check the only configured database
  dbconsole connect

  # Check a named database
  dbconsole connect --db analytics`,
	Args: cobra.NoArgs,
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)

	connectCmd.Flags().StringVar(&dbName, "db", "", "Name of the database section")
}

func runConnect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	db, err := services.Resolve(cfg, dbName)
	if err != nil {
		return err
	}

	conn, err := domain.ParseConnectionURL(db.URL)
	if err != nil {
		return fmt.Errorf("database %q: %w", db.Name, err)
	}

	var password string
	if family, _ := domain.FamilyOf(conn.Scheme); family == domain.FamilyMySQL {
		password = console.Password(conn)
	}

	adapter, err := sqldb.NewAdapter(conn, password)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Connecting to %s...\n", conn.SafeString())

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	if err := adapter.Connect(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer adapter.Close()

	fmt.Fprintln(out, successStyle.Render("✓ Connection successful!"))

	start := time.Now()
	if err := adapter.Ping(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	latency := time.Since(start)

	info, err := adapter.GetServerInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get server info: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, mutedStyle.Render(strings.Repeat("─", 60)))
	fmt.Fprintf(out, "%s  %s\n", labelStyle.Render("Database:"), db.Name)
	fmt.Fprintf(out, "%s    %s\n", labelStyle.Render("Family:"), info.Family)
	fmt.Fprintf(out, "%s   %s\n", labelStyle.Render("Latency:"), latency.Round(time.Microsecond))
	fmt.Fprintln(out, mutedStyle.Render(strings.Repeat("─", 60)))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s\n%s\n", labelStyle.Render("Version Details:"), formatVersion(info.Version))

	return nil
}

// formatVersion indents each line of the server version string
func formatVersion(version string) string {
	lines := strings.Split(version, "\n")
	var formatted []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			formatted = append(formatted, "  "+line)
		}
	}
	return strings.Join(formatted, "\n")
}

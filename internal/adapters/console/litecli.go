package console

import (
	"github.com/enunezf/dbconsole/internal/core/domain"
)

const (
	liteTool   = "litecli"
	litePrompt = `SQLite \d> `
)

// LiteCLI launches litecli for SQLite databases
type LiteCLI struct {
	base
}

// NewLiteCLI creates the litecli adapter
func NewLiteCLI(settings *domain.ConsoleSettings, opts ...Option) (*LiteCLI, error) {
	b, err := newBase(settings, opts)
	if err != nil {
		return nil, err
	}
	return &LiteCLI{base: b}, nil
}

// Family returns FamilySQLite
func (a *LiteCLI) Family() domain.Family {
	return domain.FamilySQLite
}

// Config builds the liteclirc content
func (a *LiteCLI) Config() *ToolConfig {
	cfg := &ToolConfig{}

	main := cfg.Section("main")
	main.SetString("key_bindings", "emacs")
	main.SetBool("less_chatty", true)
	main.SetBool("show_bottom_toolbar", true)
	main.SetBool("autocompletion", true)
	main.SetBool("destructive_warning", true)
	main.SetBool("login_path_as_host", false)
	main.SetBool("auto_vertical_output", false)
	main.SetString("log_file", "default")
	main.SetString("log_level", "NONE")

	a.applyHostSettings(cfg, true)
	return cfg
}

// Prepare builds the litecli invocation for a SQLite file
func (a *LiteCLI) Prepare(conn *domain.ConnectionURL, opts domain.LaunchOptions) (*domain.Invocation, error) {
	return a.prepare(a.Family(), liteTool, func(inv *domain.Invocation, dir string) error {
		rc, err := a.writeConfig(inv, dir, "liteclirc", a.Config())
		if err != nil {
			return err
		}

		inv.Args = []string{
			"--liteclirc", rc,
			"--prompt", litePrompt,
			"--table",
		}
		if opts.ListDatabases {
			inv.Args = append(inv.Args, "--execute", listCommand)
		}
		if conn.Database != "" {
			inv.Args = append(inv.Args, conn.Database)
		}
		return nil
	})
}

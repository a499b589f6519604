package console

import (
	"strconv"

	"github.com/enunezf/dbconsole/internal/core/domain"
)

const (
	pgTool   = "pgcli"
	pgPrompt = `PostgreSQL \u@\h/\d> `
)

// PgCLI launches pgcli for PostgreSQL databases
type PgCLI struct {
	base
}

// NewPgCLI creates the pgcli adapter
func NewPgCLI(settings *domain.ConsoleSettings, opts ...Option) (*PgCLI, error) {
	b, err := newBase(settings, opts)
	if err != nil {
		return nil, err
	}
	return &PgCLI{base: b}, nil
}

// Family returns FamilyPostgreSQL
func (a *PgCLI) Family() domain.Family {
	return domain.FamilyPostgreSQL
}

// Config builds the pgclirc content
func (a *PgCLI) Config() *ToolConfig {
	cfg := &ToolConfig{}

	main := cfg.Section("main")
	main.SetBool("show_bottom_toolbar", true)
	main.SetString("destructive_warning", "true")
	main.SetString("log_file", "default")
	main.SetString("log_level", "NONE")
	main.SetBool("auto_expand", true)
	main.SetBool("expand", false)
	main.SetBool("vi", false)
	main.SetBool("timing", true)
	main.SetInt("row_limit", 1000)
	main.SetString("max_field_width", "500")
	main.SetInt("min_num_menu_lines", 4)
	main.SetString("multiline_continuation_char", "")
	main.SetString("on_error", "STOP")
	main.SetBool("keyring", false)
	main.SetBool("smart_completion", true)
	main.SetString("keyword_casing", "auto")
	main.SetBool("generate_casing_file", false)
	main.SetBool("generate_aliases", false)
	main.SetString("asterisk_column_order", "table_order")
	main.SetString("qualify_columns", "if_more_than_one_table")
	main.SetBool("case_column_headers", false)
	main.SetBool("search_path_filter", false)
	main.SetString("history_file", "default")

	a.applyHostSettings(cfg, false)

	formats := cfg.Section("data_formats")
	formats.SetString("decimal", "")
	formats.SetString("float", "")

	return cfg
}

// Prepare builds the pgcli invocation. The password travels in PGPASSWORD
// so it never shows up in the process list.
func (a *PgCLI) Prepare(conn *domain.ConnectionURL, opts domain.LaunchOptions) (*domain.Invocation, error) {
	return a.prepare(a.Family(), pgTool, func(inv *domain.Invocation, dir string) error {
		rc, err := a.writeConfig(inv, dir, "pgclirc", a.Config())
		if err != nil {
			return err
		}

		inv.Args = []string{"--pgclirc", rc}
		if conn.Host != "" {
			inv.Args = append(inv.Args, "--host", conn.Host)
		}
		if conn.Port != 0 {
			inv.Args = append(inv.Args, "--port", strconv.Itoa(conn.Port))
		}
		if conn.Username != "" {
			inv.Args = append(inv.Args, "--username", conn.Username)
		}
		inv.Args = append(inv.Args,
			"--no-password",
			"--less-chatty",
			"--prompt", pgPrompt,
			"--prompt-dsn", "DSN",
		)
		if opts.ListDatabases {
			inv.Args = append(inv.Args, "--list")
		}
		if conn.Database != "" {
			inv.Args = append(inv.Args, conn.Database)
		}

		if conn.Password != "" {
			inv.Env = append(inv.Env, "PGPASSWORD="+conn.Password)
		}
		return nil
	})
}

package console

import (
	"io"
	"strconv"

	"github.com/dracory/env"

	"github.com/enunezf/dbconsole/internal/core/domain"
)

const (
	myTool   = "mycli"
	myPrompt = `\t \u@\h/\d> `

	// PasswordEnv holds the MySQL password handed to mycli
	PasswordEnv = "MYSQLPASSWORD"
)

// MyCLI launches mycli for MySQL and MariaDB databases
type MyCLI struct {
	base
}

// NewMyCLI creates the mycli adapter
func NewMyCLI(settings *domain.ConsoleSettings, opts ...Option) (*MyCLI, error) {
	b, err := newBase(settings, opts)
	if err != nil {
		return nil, err
	}
	return &MyCLI{base: b}, nil
}

// Family returns FamilyMySQL
func (a *MyCLI) Family() domain.Family {
	return domain.FamilyMySQL
}

// Config builds the myclirc content
func (a *MyCLI) Config() *ToolConfig {
	cfg := &ToolConfig{}

	main := cfg.Section("main")
	main.SetString("key_bindings", "emacs")
	main.SetBool("timing", true)
	main.SetInt("beep_after_seconds", 0)
	main.SetBool("less_chatty", true)
	main.SetBool("destructive_warning", true)
	main.SetBool("login_path_as_host", false)
	main.SetBool("auto_vertical_output", false)
	main.SetString("log_file", "")
	main.SetString("log_level", "NONE")
	main.SetBool("smart_completion", true)

	a.applyHostSettings(cfg, true)

	cfg.Section("alias_dsn")

	return cfg
}

// Password returns the MySQL password: MYSQLPASSWORD when set, else the
// password embedded in the connection URL.
func Password(conn *domain.ConnectionURL) string {
	if pw := env.GetStringOrDefault(PasswordEnv, ""); pw != "" {
		return pw
	}
	return conn.Password
}

// Prepare builds the mycli invocation. The password is written to a private
// temp file passed with --password-file; Cleanup deletes it.
func (a *MyCLI) Prepare(conn *domain.ConnectionURL, opts domain.LaunchOptions) (*domain.Invocation, error) {
	return a.prepare(a.Family(), myTool, func(inv *domain.Invocation, dir string) error {
		rc, err := a.writeConfig(inv, dir, "myclirc", a.Config())
		if err != nil {
			return err
		}

		inv.Args = []string{"--myclirc", rc}
		if conn.Host != "" {
			inv.Args = append(inv.Args, "--host", conn.Host)
		}
		if conn.Port != 0 {
			inv.Args = append(inv.Args, "--port", strconv.Itoa(conn.Port))
		}
		if conn.Username != "" {
			inv.Args = append(inv.Args, "--user", conn.Username)
		}
		if conn.Database != "" {
			inv.Args = append(inv.Args, "--database", conn.Database)
		}
		inv.Args = append(inv.Args,
			"--prompt", myPrompt,
			"--table",
			"--verbose",
		)
		if opts.ListDatabases {
			inv.Args = append(inv.Args, "--execute", listCommand)
		}

		if pw := Password(conn); pw != "" {
			path, err := a.writeFile(inv, dir, "password", func(w io.Writer) error {
				_, err := io.WriteString(w, pw)
				return err
			})
			if err != nil {
				return err
			}
			inv.CredentialFile = path
			inv.Args = append(inv.Args, "--password-file", path)
		}
		return nil
	})
}

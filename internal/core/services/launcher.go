// Package services contains the business logic services.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/enunezf/dbconsole/internal/core/domain"
	"github.com/enunezf/dbconsole/internal/core/ports"
)

// Option defines a functional option for configuring a Launcher.
type Option func(*Launcher) error

// WithLogger sets the logger for the Launcher.
func WithLogger(logger ports.Logger) Option {
	return func(l *Launcher) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		l.logger = logger
		return nil
	}
}

// WithAdapter registers the console adapter for its family, replacing any
// adapter registered before for the same family.
func WithAdapter(adapter ports.ConsoleAdapter) Option {
	return func(l *Launcher) error {
		if adapter == nil {
			return fmt.Errorf("adapter must not be nil")
		}
		l.adapters[adapter.Family()] = adapter
		return nil
	}
}

// Launcher resolves a configured database and hands control to the console
// serving its driver family.
type Launcher struct {
	databases ports.DatabaseService
	runner    ports.Runner
	adapters  map[domain.Family]ports.ConsoleAdapter
	logger    ports.Logger
}

// NewLauncher creates a launcher. Adapters are registered with WithAdapter.
func NewLauncher(databases ports.DatabaseService, runner ports.Runner, opts ...Option) (*Launcher, error) {
	if databases == nil {
		return nil, fmt.Errorf("database service must not be nil")
	}
	if runner == nil {
		return nil, fmt.Errorf("runner must not be nil")
	}

	l := &Launcher{
		databases: databases,
		runner:    runner,
		adapters:  map[domain.Family]ports.ConsoleAdapter{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Resolve selects the database to open. An empty name is accepted only when
// exactly one database is configured.
func (l *Launcher) Resolve(name string) (domain.Database, error) {
	return Resolve(l.databases, name)
}

// Resolve applies the --db selection rules to a database service
func Resolve(databases ports.DatabaseService, name string) (domain.Database, error) {
	all := databases.Databases()

	if name == "" {
		if len(all) != 1 {
			return domain.Database{}, fmt.Errorf("%w (configured: %s)", domain.ErrMissingSelector, knownNames(all))
		}
		for _, db := range all {
			return db, nil
		}
	}

	db, ok := all[name]
	if !ok {
		return domain.Database{}, fmt.Errorf("%w %q (configured: %s)", domain.ErrUnknownDatabase, name, knownNames(all))
	}
	return db, nil
}

// Dispatch returns the adapter for a connection's driver family
func (l *Launcher) Dispatch(conn *domain.ConnectionURL) (ports.ConsoleAdapter, error) {
	family, err := domain.FamilyOf(conn.Scheme)
	if err != nil {
		return nil, err
	}

	adapter, ok := l.adapters[family]
	if !ok {
		return nil, fmt.Errorf("%w: no console registered for %s", domain.ErrUnsupportedDriver, family)
	}
	return adapter, nil
}

// Launch opens the console for the named database and returns the console's
// exit code. Temporary files are removed whatever the outcome.
func (l *Launcher) Launch(ctx context.Context, name string, opts domain.LaunchOptions) (code int, err error) {
	db, err := l.Resolve(name)
	if err != nil {
		return 1, err
	}

	conn, err := domain.ParseConnectionURL(db.URL)
	if err != nil {
		return 1, fmt.Errorf("database %q: %w", db.Name, err)
	}

	adapter, err := l.Dispatch(conn)
	if err != nil {
		return 1, err
	}

	l.logger.Debug("launching console",
		"database", db.Name,
		"url", conn.SafeString(),
		"family", adapter.Family(),
		"list_databases", opts.ListDatabases,
	)

	inv, err := adapter.Prepare(conn, opts)
	if err != nil {
		return 1, fmt.Errorf("failed to prepare %s console: %w", adapter.Family(), err)
	}
	defer func() {
		if cerr := inv.Cleanup(); cerr != nil {
			l.logger.Warn("failed to clean up console files", "error", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	l.logger.Debug("running console", "executable", inv.Executable, "temp_files", inv.TempFiles)

	code, err = l.runner.Run(ctx, inv)
	if err != nil {
		return 1, err
	}

	l.logger.Debug("console exited", "executable", inv.Executable, "code", code)
	return code, nil
}

func knownNames(all map[string]domain.Database) string {
	if len(all) == 0 {
		return "none"
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Package sqldb opens configured databases with Go SQL drivers.
package sqldb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/enunezf/dbconsole/internal/core/domain"
	"github.com/enunezf/dbconsole/internal/core/ports"
)

var _ ports.DatabasePort = (*Adapter)(nil)

// Adapter implements the DatabasePort interface for every supported family
type Adapter struct {
	conn     *domain.ConnectionURL
	family   domain.Family
	password string
	db       *sqlx.DB
}

// NewAdapter creates an adapter for a connection. password overrides the
// password embedded in the URL when not empty.
func NewAdapter(conn *domain.ConnectionURL, password string) (*Adapter, error) {
	family, err := domain.FamilyOf(conn.Scheme)
	if err != nil {
		return nil, err
	}
	if password == "" {
		password = conn.Password
	}
	return &Adapter{conn: conn, family: family, password: password}, nil
}

// DriverName returns the database/sql driver name
func (a *Adapter) DriverName() string {
	switch a.family {
	case domain.FamilyPostgreSQL:
		return "pgx"
	case domain.FamilyMySQL:
		return "mysql"
	default:
		return "sqlite"
	}
}

// DSN returns the driver-specific data source name
func (a *Adapter) DSN() string {
	switch a.family {
	case domain.FamilyPostgreSQL:
		u := url.URL{
			Scheme: "postgres",
			Host:   a.conn.HostPort(5432),
			Path:   "/" + a.conn.Database,
		}
		if a.conn.Username != "" {
			u.User = url.UserPassword(a.conn.Username, a.password)
			if a.password == "" {
				u.User = url.User(a.conn.Username)
			}
		}
		if len(a.conn.Query) > 0 {
			u.RawQuery = a.conn.Query.Encode()
		}
		return u.String()

	case domain.FamilyMySQL:
		cfg := mysql.NewConfig()
		cfg.User = a.conn.Username
		cfg.Passwd = a.password
		cfg.Net = "tcp"
		cfg.Addr = a.conn.HostPort(3306)
		cfg.DBName = a.conn.Database
		return cfg.FormatDSN()

	default:
		if a.conn.Database == "" {
			return ":memory:"
		}
		// Opening must not create a missing file
		return "file:" + a.conn.Database + "?mode=rw"
	}
}

// Connect establishes a connection to the database
func (a *Adapter) Connect(ctx context.Context) error {
	db, err := sqlx.ConnectContext(ctx, a.DriverName(), a.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", a.conn.SafeString(), err)
	}

	db.SetMaxOpenConns(1)
	a.db = db
	return nil
}

// Ping verifies the connection is still alive
func (a *Adapter) Ping(ctx context.Context) error {
	if a.db == nil {
		return fmt.Errorf("not connected")
	}
	return a.db.PingContext(ctx)
}

// Close closes the database connection
func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// GetServerInfo retrieves the server version
func (a *Adapter) GetServerInfo(ctx context.Context) (*domain.ServerInfo, error) {
	if a.db == nil {
		return nil, fmt.Errorf("not connected")
	}

	info := &domain.ServerInfo{Family: a.family}
	if err := a.db.GetContext(ctx, &info.Version, versionQuery(a.family)); err != nil {
		return nil, fmt.Errorf("failed to get server info: %w", err)
	}
	return info, nil
}

func versionQuery(family domain.Family) string {
	switch family {
	case domain.FamilyPostgreSQL:
		return "SELECT version()"
	case domain.FamilyMySQL:
		return "SELECT VERSION()"
	default:
		return "SELECT 'SQLite ' || sqlite_version()"
	}
}

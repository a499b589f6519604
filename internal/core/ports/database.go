// Package ports defines the interfaces (ports) for the hexagonal architecture.
package ports

import (
	"context"

	"github.com/enunezf/dbconsole/internal/core/domain"
)

// DatabaseService exposes the configured database connections
type DatabaseService interface {
	// Databases returns the configured databases, keyed by name
	Databases() map[string]domain.Database
}

// DatabasePort defines the interface for direct database access
type DatabasePort interface {
	// Connect establishes a connection to the database
	Connect(ctx context.Context) error

	// Ping verifies the connection is still alive
	Ping(ctx context.Context) error

	// Close closes the database connection
	Close() error

	// GetServerInfo retrieves information about the connected server
	GetServerInfo(ctx context.Context) (*domain.ServerInfo, error)
}

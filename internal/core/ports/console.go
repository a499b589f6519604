package ports

import (
	"context"

	"github.com/enunezf/dbconsole/internal/core/domain"
)

// ConsoleAdapter prepares the launch of one external console
type ConsoleAdapter interface {
	// Family returns the driver family served by the console
	Family() domain.Family

	// Prepare builds the invocation for a connection. The caller must run
	// the returned invocation's Cleanup once the console has exited.
	Prepare(conn *domain.ConnectionURL, opts domain.LaunchOptions) (*domain.Invocation, error)
}

// Runner runs an external console attached to the terminal
type Runner interface {
	// Run blocks until the process exits and returns its exit code
	Run(ctx context.Context, inv *domain.Invocation) (int, error)
}

// Logger is satisfied by *slog.Logger
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

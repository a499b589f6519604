package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/enunezf/dbconsole/internal/core/domain"
	"github.com/enunezf/dbconsole/internal/core/ports"
)

var (
	_ ports.Runner         = (*ExecRunner)(nil)
	_ ports.ConsoleAdapter = (*LiteCLI)(nil)
	_ ports.ConsoleAdapter = (*PgCLI)(nil)
	_ ports.ConsoleAdapter = (*MyCLI)(nil)
)

// listCommand is the console command that lists databases
const listCommand = `\l`

// ExecRunner runs consoles as child processes wired to the terminal
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner attached to the process stdio
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the console, waits for it and returns its exit code. A console
// that exits non-zero is not an error; failing to start it is.
//
// While the console runs, interrupt and quit signals from the terminal are
// left to the console, and terminate and hangup signals are forwarded to it.
// dbconsole itself keeps running until the console exits.
func (r *ExecRunner) Run(ctx context.Context, inv *domain.Invocation) (int, error) {
	cmd := exec.CommandContext(ctx, inv.Executable, inv.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Env = append(os.Environ(), inv.Env...)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("failed to run %s: %w", inv.Executable, err)
	}

	done := make(chan struct{})
	defer close(done)
	go relaySignals(cmd.Process, signals, done)

	err := cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("failed to run %s: %w", inv.Executable, err)
	}
	return 0, nil
}

// relaySignals forwards terminate and hangup to the console until done is
// closed. The terminal already delivers interrupt and quit to the console.
func relaySignals(process *os.Process, signals <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-signals:
			if sig == syscall.SIGTERM || sig == syscall.SIGHUP {
				_ = process.Signal(sig)
			}
		case <-done:
			return
		}
	}
}

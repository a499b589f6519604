package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/enunezf/dbconsole/internal/core/domain"
	"github.com/enunezf/dbconsole/internal/core/ports"
)

// Option defines a functional option for configuring a console adapter.
type Option func(*base) error

// WithLogger sets the logger for the adapter.
func WithLogger(logger ports.Logger) Option {
	return func(b *base) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		b.logger = logger
		return nil
	}
}

// WithTempDir sets the parent directory for rc and credential files.
// The default is os.TempDir().
func WithTempDir(dir string) Option {
	return func(b *base) error {
		if dir == "" {
			return fmt.Errorf("temp dir must not be empty")
		}
		b.tempDir = dir
		return nil
	}
}

// base holds what every console adapter shares
type base struct {
	settings *domain.ConsoleSettings
	logger   ports.Logger
	tempDir  string
}

func newBase(settings *domain.ConsoleSettings, opts []Option) (base, error) {
	if settings == nil {
		settings = domain.NewConsoleSettings()
	}

	b := base{
		settings: settings,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(&b); err != nil {
			return base{}, err
		}
	}
	return b, nil
}

// applyHostSettings copies the host-controlled options into [main] and the
// merged theme into [colors].
func (b *base) applyHostSettings(cfg *ToolConfig, withContinuation bool) {
	main := cfg.Section("main")
	main.SetBool("multi_line", b.settings.MultiLine)
	main.SetString("table_format", b.settings.TableFormat)
	main.SetString("syntax_style", b.settings.SyntaxStyle)
	main.SetBool("wider_completion_menu", b.settings.WiderCompletionMenu)
	main.SetBool("enable_pager", b.settings.EnablePager)
	main.SetString("pager", b.settings.Pager)
	if withContinuation {
		main.SetString("prompt_continuation", b.settings.PromptContinuation)
	}

	cfg.SetMap("colors", b.settings.MergedColors())
}

// workspace creates a private directory for one invocation and registers
// its removal. Files written there are readable by the current user only.
func (b *base) workspace(inv *domain.Invocation) (string, error) {
	dir, err := os.MkdirTemp(b.tempDir, "dbconsole-")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}

	inv.OnCleanup(func() error {
		if err := os.RemoveAll(dir); err != nil {
			b.logger.Warn("failed to remove temp dir", "dir", dir, "error", err)
			return fmt.Errorf("failed to remove temp dir %s: %w", dir, err)
		}
		b.logger.Debug("removed temp dir", "dir", dir)
		return nil
	})

	return dir, nil
}

// writeFile writes a private file inside dir and records it on inv
func (b *base) writeFile(inv *domain.Invocation, dir, name string, write func(io.Writer) error) (string, error) {
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	inv.TempFiles = append(inv.TempFiles, path)
	b.logger.Debug("created temp file", "path", path)
	return path, nil
}

// writeConfig renders cfg into an rc file
func (b *base) writeConfig(inv *domain.Invocation, dir, name string, cfg *ToolConfig) (string, error) {
	path, err := b.writeFile(inv, dir, name, func(w io.Writer) error {
		_, err := cfg.WriteTo(w)
		return err
	})
	if err != nil {
		return "", err
	}
	b.logger.Debug("wrote rc file", "path", path, "sections", cfg.sectionNames())
	return path, nil
}

// prepare runs build with a fresh invocation and workspace, releasing the
// workspace when build fails.
func (b *base) prepare(family domain.Family, tool string, build func(inv *domain.Invocation, dir string) error) (*domain.Invocation, error) {
	inv := &domain.Invocation{
		Family:     family,
		Executable: b.settings.Executable(tool),
	}

	dir, err := b.workspace(inv)
	if err != nil {
		return nil, err
	}

	if err := build(inv, dir); err != nil {
		if cerr := inv.Cleanup(); cerr != nil {
			b.logger.Warn("cleanup after failed prepare", "error", cerr)
		}
		return nil, err
	}
	return inv, nil
}

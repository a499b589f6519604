// Package config loads the dbconsole configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dracory/env"
	"gopkg.in/yaml.v3"

	"github.com/enunezf/dbconsole/internal/core/domain"
)

const (
	// PathEnv overrides the default configuration path
	PathEnv = "DBCONSOLE_CONFIG"

	// DefaultPath is used when neither --config nor DBCONSOLE_CONFIG is set
	DefaultPath = "~/.config/dbconsole/config.yaml"
)

// ErrNoConfig is returned when the configuration file does not exist
var ErrNoConfig = errors.New("configuration file not found")

// DatabaseEntry is one entry of the databases section
type DatabaseEntry struct {
	URL string `yaml:"url"`
}

// File is the on-disk layout of the configuration
type File struct {
	Databases map[string]DatabaseEntry `yaml:"databases"`
	Console   *domain.ConsoleSettings  `yaml:"console"`
}

// Config is the loaded configuration. It serves the configured databases.
type Config struct {
	Path      string
	Console   *domain.ConsoleSettings
	databases map[string]domain.Database
}

// Databases returns the configured databases keyed by name
func (c *Config) Databases() map[string]domain.Database {
	out := make(map[string]domain.Database, len(c.databases))
	for k, v := range c.databases {
		out[k] = v
	}
	return out
}

// ResolvePath returns the configuration path to use: the explicit path when
// given, else DBCONSOLE_CONFIG, else DefaultPath. A leading ~ is expanded.
func ResolvePath(explicit string) (string, error) {
	path := explicit
	if path == "" {
		path = env.GetStringOrDefault(PathEnv, DefaultPath)
	}
	return expandHomeDir(path)
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoConfig, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes configuration YAML. Console options absent from the document
// keep their defaults.
func Parse(data []byte) (*Config, error) {
	file := File{Console: domain.NewConsoleSettings()}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal: %w", err)
	}
	if file.Console == nil {
		// an explicit "console:" with no body decodes to nil
		file.Console = domain.NewConsoleSettings()
	}

	if err := file.Console.Validate(); err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	cfg := &Config{
		Console:   file.Console,
		databases: make(map[string]domain.Database, len(file.Databases)),
	}

	for name, entry := range file.Databases {
		if strings.TrimSpace(name) != name || name == "" {
			return nil, fmt.Errorf("database name %q is empty or has surrounding whitespace", name)
		}
		if strings.TrimSpace(entry.URL) == "" {
			return nil, fmt.Errorf("database %q has no url", name)
		}
		cfg.databases[name] = domain.Database{Name: name, URL: entry.URL}
	}

	return cfg, nil
}

// expandHomeDir replaces the leading ~ with the user's home directory
func expandHomeDir(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, path[1:]), nil
}

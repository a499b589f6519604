package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enunezf/dbconsole/internal/config"
	"github.com/enunezf/dbconsole/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func Test_Load_ReadsDatabasesAndConsoleSettings(t *testing.T) {
	path := writeConfig(t, `
databases:
  default:
    url: sqlite:///data/app.db
  analytics:
    url: postgresql://scott:tiger@db:5432/analytics
console:
  multi_line: false
  table_format: psql
  syntax_style: monokai
  enable_pager: true
  colors:
    output.header: "#ff0000 bold"
  executables:
    pgcli: /opt/pgcli/bin/pgcli
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, map[string]domain.Database{
		"default":   {Name: "default", URL: "sqlite:///data/app.db"},
		"analytics": {Name: "analytics", URL: "postgresql://scott:tiger@db:5432/analytics"},
	}, cfg.Databases())

	assert.False(t, cfg.Console.MultiLine)
	assert.Equal(t, "psql", cfg.Console.TableFormat)
	assert.Equal(t, "monokai", cfg.Console.SyntaxStyle)
	assert.True(t, cfg.Console.EnablePager)
	assert.Equal(t, "#ff0000 bold", cfg.Console.MergedColors()["output.header"])
	assert.Equal(t, "/opt/pgcli/bin/pgcli", cfg.Console.Executable("pgcli"))

	// untouched options keep their defaults
	assert.True(t, cfg.Console.Activated)
	assert.Equal(t, "less -SRXF", cfg.Console.Pager)
	assert.Equal(t, "-> ", cfg.Console.PromptContinuation)
}

func Test_Parse_WithoutConsoleSection_UsesDefaults(t *testing.T) {
	for _, doc := range []string{"databases: {}\n", "console:\n"} {
		cfg, err := config.Parse([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, domain.NewConsoleSettings(), cfg.Console)
		assert.Empty(t, cfg.Databases())
	}
}

func Test_Parse_ShouldFail_WithInvalidContent(t *testing.T) {
	testCases := map[string]string{
		"bad yaml":        "databases: [",
		"bad table":       "console:\n  table_format: spreadsheet\n",
		"bad style":       "console:\n  syntax_style: neon\n",
		"missing url":     "databases:\n  a: {}\n",
		"padded name":     "databases:\n  ' a ':\n    url: sqlite://\n",
		"wrong bool type": "console:\n  activated: [1]\n",
	}

	for name, doc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, config.ErrNoConfig)
}

func Test_Config_Databases_ReturnsCopy(t *testing.T) {
	cfg, err := config.Parse([]byte("databases:\n  a:\n    url: sqlite://\n"))
	require.NoError(t, err)

	dbs := cfg.Databases()
	delete(dbs, "a")

	assert.Len(t, cfg.Databases(), 1)
}

func Test_ResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv(config.PathEnv, "")
	path, err := config.ResolvePath("/etc/dbconsole.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/dbconsole.yaml", path)

	t.Setenv(config.PathEnv, "~/custom.yaml")
	path, err = config.ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "custom.yaml"), path)
}

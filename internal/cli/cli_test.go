package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enunezf/dbconsole/internal/core/domain"
	"github.com/enunezf/dbconsole/internal/core/ports"
)

type runnerSpy struct {
	code        int
	invocations []*domain.Invocation
}

func (r *runnerSpy) Run(_ context.Context, inv *domain.Invocation) (int, error) {
	r.invocations = append(r.invocations, inv)
	return r.code, nil
}

// execute runs the root command with fresh flag values and the given runner
func execute(t *testing.T, runner ports.Runner, args ...string) (string, error) {
	t.Helper()

	dbName, listDatabases, configPath, verbose = "", false, "", false
	t.Setenv("TMPDIR", t.TempDir())

	previous := newRunner
	newRunner = func() ports.Runner { return runner }
	t.Cleanup(func() { newRunner = previous })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func Test_Console_OpensTheOnlyDatabase(t *testing.T) {
	path := writeConfig(t, "databases:\n  default:\n    url: sqlite:///app.db\n")
	runner := &runnerSpy{}

	_, err := execute(t, runner, "--config", path, "console")

	require.NoError(t, err)
	require.Len(t, runner.invocations, 1)
	assert.Equal(t, "litecli", runner.invocations[0].Executable)
}

func Test_Console_ListFlag(t *testing.T) {
	path := writeConfig(t, "databases:\n  pg:\n    url: postgresql://u@h/db\n")
	runner := &runnerSpy{}

	_, err := execute(t, runner, "--config", path, "cli", "--db", "pg", "-l")

	require.NoError(t, err)
	require.Len(t, runner.invocations, 1)
	assert.Contains(t, runner.invocations[0].Args, "--list")
}

func Test_Console_SeveralDatabasesWithoutDB_Fails(t *testing.T) {
	path := writeConfig(t, `
databases:
  a:
    url: postgresql://u@h/a
  b:
    url: postgresql://u@h/b
`)
	runner := &runnerSpy{}

	_, err := execute(t, runner, "--config", path, "console")

	require.ErrorIs(t, err, domain.ErrMissingSelector)
	assert.Empty(t, runner.invocations)
}

func Test_Console_NonZeroExit_IsReportedAsExitError(t *testing.T) {
	path := writeConfig(t, "databases:\n  default:\n    url: mysql://root@h/shop\n")
	runner := &runnerSpy{code: 4}

	_, err := execute(t, runner, "--config", path, "console")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 4, exitErr.Code)
}

func Test_Console_Deactivated_LaunchesNothing(t *testing.T) {
	path := writeConfig(t, "databases:\n  default:\n    url: sqlite://\nconsole:\n  activated: false\n")
	runner := &runnerSpy{}

	_, err := execute(t, runner, "--config", path, "console")

	require.ErrorIs(t, err, domain.ErrConsoleDisabled)
	assert.Empty(t, runner.invocations)
}

func Test_Console_MissingConfig_Fails(t *testing.T) {
	runner := &runnerSpy{}

	_, err := execute(t, runner, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "console")

	assert.ErrorContains(t, err, "configuration error")
	assert.Empty(t, runner.invocations)
}

func Test_Connect_SQLite(t *testing.T) {
	db := filepath.Join(t.TempDir(), "app.db")
	require.NoError(t, os.WriteFile(db, nil, 0600))
	path := writeConfig(t, "databases:\n  default:\n    url: sqlite:///"+db+"\n")

	out, err := execute(t, &runnerSpy{}, "--config", path, "connect")

	require.NoError(t, err)
	assert.Contains(t, out, "Connection successful")
	assert.Contains(t, out, "SQLite 3.")
	assert.Contains(t, out, "Latency:")
	assert.Contains(t, out, "default")
}

func Test_Connect_UnknownDatabase_Fails(t *testing.T) {
	path := writeConfig(t, "databases:\n  default:\n    url: sqlite://\n")

	_, err := execute(t, &runnerSpy{}, "--config", path, "connect", "--db", "other")

	assert.ErrorIs(t, err, domain.ErrUnknownDatabase)
}

func Test_ExitCode(t *testing.T) {
	assert.Equal(t, 3, exitCode(3))
	assert.Equal(t, 1, exitCode(-1))
	assert.Equal(t, 1, exitCode(0))
	assert.Equal(t, 1, exitCode(300))
}

func Test_FormatVersion(t *testing.T) {
	assert.Equal(t, "  PostgreSQL 16.2\n  on x86_64", formatVersion("PostgreSQL 16.2\n\n   on x86_64  \n"))
}

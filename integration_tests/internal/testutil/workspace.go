package testutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Workspace is a scratch directory holding a task file for one test
type Workspace struct {
	Dir string
}

// Result captures one invocation of the fate binary
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// SetupTestWorkspace creates a workspace directory and writes files into it,
// keyed by path relative to the workspace.
func SetupTestWorkspace(t *testing.T, files map[string]string) *Workspace {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "failed to create directory for %s", name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to write %s", name)
	}
	return &Workspace{Dir: dir}
}

// Path returns name resolved inside the workspace
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Exists reports whether name exists inside the workspace
func (w *Workspace) Exists(name string) bool {
	_, err := os.Stat(w.Path(name))
	return err == nil
}

// Run invokes the fate binary with args from the workspace directory
func (w *Workspace) Run(t *testing.T, args ...string) Result {
	t.Helper()

	binary, err := GetFateBinaryPath()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = w.Dir
	cmd.Env = append(os.Environ(), "LOG_MODE=", "LOG_FORMAT=")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := Result{}
	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		require.NoError(t, err, "failed to run fate")
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

package executil

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSh(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, RunSh(ctx, "", "true"))

	err := RunSh(ctx, "", "echo 'boom' >&2; exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestRunSh_Dir(t *testing.T) {
	dir := t.TempDir()
	err := RunSh(context.Background(), dir, `[ "$(pwd -P)" = "$(cd `+dir+` && pwd -P)" ]`)
	assert.NoError(t, err)
}

func TestRunSh_StderrCapped(t *testing.T) {
	err := RunSh(context.Background(), "", "yes x | head -c 2000 >&2; exit 1")
	require.Error(t, err)

	msg := err.Error()
	// exit status text is appended after the captured stderr
	assert.Less(t, len(msg), 600)
	assert.True(t, strings.HasPrefix(msg, "x"))
}

func TestLimitedWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &limitedWriter{buf: &buf, max: 5}

	n, err := w.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n, "reports full write so callers never error")
	assert.Equal(t, "hello", buf.String())

	n, err = w.Write([]byte("more"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "hello", buf.String())
}

func TestRunSh_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunSh(ctx, "", "sleep 5")
	require.Error(t, err)
	assert.False(t, errors.Is(err, nil))
}

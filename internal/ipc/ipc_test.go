//go:build !windows

package ipc

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketPathOverride(t *testing.T) {
	t.Setenv("PCS_SOCKET", "/tmp/custom.sock")
	assert.Equal(t, "/tmp/custom.sock", SocketPath())

	t.Setenv("PCS_SOCKET", "")
	assert.True(t, strings.HasSuffix(SocketPath(), "process-capture.sock"))
}

func TestListenDialRoundTrip(t *testing.T) {
	t.Setenv("PCS_SOCKET", filepath.Join(t.TempDir(), "ctl.sock"))

	ln, err := Listen()
	require.NoError(t, err)
	defer ln.Close()

	assert.True(t, IsRunning())

	done := make(chan struct{})
	go func() {
		defer close(done)
		c, err := ln.Accept()
		if err != nil {
			return
		}
		c.Close()
	}()

	c, err := Dial()
	require.NoError(t, err)
	c.Close()
	<-done
}

func TestIsRunningNoDaemon(t *testing.T) {
	t.Setenv("PCS_SOCKET", filepath.Join(t.TempDir(), "absent.sock"))
	assert.False(t, IsRunning())
}

func TestPipePathUnsupported(t *testing.T) {
	t.Setenv("PCS_SOCKET", `\\.\pipe\process-capture`)

	_, err := Listen()
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Dial()
	assert.ErrorIs(t, err, ErrUnsupported)

	assert.False(t, IsRunning())
}

func TestListenRemovesStaleSocket(t *testing.T) {
	t.Setenv("PCS_SOCKET", filepath.Join(t.TempDir(), "stale.sock"))

	ln, err := Listen()
	require.NoError(t, err)
	ln.Close()

	// A socket file left behind by a crashed run must not block a restart.
	ln2, err := Listen()
	require.NoError(t, err)
	ln2.Close()
}

// Package ipc provides the local Unix-socket control channel the status CLI
// uses to talk to a running capture daemon.
//
// The channel carries the same newline-delimited JSON wire as the GUI
// bridge, unencrypted: the socket is local and mode-restricted.
package ipc

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrUnsupported reports that the control socket has no implementation on
// this platform. Windows would need a named pipe; the daemon runs without
// a control channel there.
var ErrUnsupported = errors.New("ipc: control socket not supported on this platform")

// SocketPath returns the platform-appropriate path for the control socket.
//
//   - Linux / macOS: $TMPDIR/process-capture.sock (override with $PCS_SOCKET)
//   - Windows:       \\.\pipe\process-capture     (named pipe — Listen and Dial
//     report ErrUnsupported for pipe paths)
func SocketPath() string {
	if s := os.Getenv("PCS_SOCKET"); s != "" {
		return s
	}
	if runtime.GOOS == "windows" {
		return `\\.\pipe\process-capture`
	}
	return filepath.Join(os.TempDir(), "process-capture.sock")
}

// IsRunning reports whether a capture daemon appears to be listening on the
// control socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := Dial()
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates and returns a net.Listener on the control socket path,
// removing any stale socket file first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	if isPipePath(path) {
		return nil, ErrUnsupported
	}
	// Remove stale socket from a previous (crashed) run.
	_ = os.Remove(path)
	return net.Listen("unix", path)
}

// Dial connects to the control socket of a running daemon.
func Dial() (net.Conn, error) {
	path := SocketPath()
	if isPipePath(path) {
		return nil, ErrUnsupported
	}
	return net.Dial("unix", path)
}

func isPipePath(p string) bool {
	return strings.HasPrefix(p, `\\.\pipe\`)
}

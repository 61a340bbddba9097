// Package clip reads the system clipboard across platforms. Build
// constraints select the implementation:
//
//	clip_darwin.go  — macOS via golang.design/x/clipboard + cgo changeCount
//	clip_windows.go — Windows via golang.design/x/clipboard + AddClipboardFormatListener
//	clip_linux.go   — Linux via golang.design/x/clipboard, polling only
//	clip_other.go   — headless / container stub
//
// The capture service only observes the clipboard, so the surface is
// read-and-watch: no writes.
package clip

// Backend is the interface all platform clipboard implementations satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the current text clipboard contents, or "" when the
	// clipboard is empty or holds only non-text data.
	ReadText() (string, error)

	// Watch returns a channel that receives a signal whenever the clipboard
	// changes. Never closed. On platforms without native change notification
	// this is implemented via polling; the caller calls ReadText on signal.
	Watch() <-chan struct{}

	// Close releases any resources held by the backend.
	Close()
}

// headlessBackend is the no-op backend for environments without a display
// server. It never produces Watch events.
type headlessBackend struct {
	watchCh chan struct{}
}

func (b *headlessBackend) Name() string              { return "headless (no-op)" }
func (b *headlessBackend) ReadText() (string, error) { return "", nil }
func (b *headlessBackend) Watch() <-chan struct{}    { return b.watchCh }
func (b *headlessBackend) Close()                    {}

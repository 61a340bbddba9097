// Package bridge maintains the link to the companion GUI process: it dials
// the GUI's local socket, announces capabilities, forwards activity events
// fire-and-forget, and dispatches inbound commands.
//
// Delivery is best-effort by design. While the GUI is absent events are
// dropped, not buffered: the GUI owns durable history, this side only owns
// capture.
package bridge

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Larksa/process-capture-studio/internal/crypto"
	"github.com/Larksa/process-capture-studio/internal/event"
	"github.com/Larksa/process-capture-studio/internal/wire"
)

const (
	// DefaultAddr is the GUI's local event socket.
	DefaultAddr = "localhost:9876"

	dialTimeout    = 10 * time.Second
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second

	sendBuffer = 256
)

// Capabilities announced in the handshake record.
var Capabilities = []string{"file_system", "excel", "desktop", "clipboard"}

// PasteHandler receives capture_paste_destination commands.
type PasteHandler interface {
	OnPasteSignal(signalTimestamp, appName, windowTitle string) event.CrossAppPaste
}

// Bridge is the persistent GUI connection with reconnect.
type Bridge struct {
	addr    string
	key     *crypto.Key
	handler PasteHandler

	sendCh    chan event.Event
	connected atomic.Bool
	dropped   atomic.Int64
}

// New creates a Bridge dialing addr. key is nil for a plaintext link.
func New(addr string, key *crypto.Key, handler PasteHandler) *Bridge {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Bridge{
		addr:    addr,
		key:     key,
		handler: handler,
		sendCh:  make(chan event.Event, sendBuffer),
	}
}

// Connected reports whether a GUI session is currently up.
func (b *Bridge) Connected() bool { return b.connected.Load() }

// Dropped returns how many events were discarded while disconnected or
// while the send buffer was full.
func (b *Bridge) Dropped() int64 { return b.dropped.Load() }

// Send queues ev for delivery. Never blocks: with no GUI session, or a full
// buffer, the event is dropped.
func (b *Bridge) Send(ev event.Event) {
	if !b.connected.Load() {
		b.dropped.Add(1)
		return
	}
	select {
	case b.sendCh <- ev:
	default:
		b.dropped.Add(1)
		slog.Warn("bridge send buffer full, dropping", "type", ev.Kind())
	}
}

// Run dials and re-dials the GUI until ctx is done.
func (b *Bridge) Run(ctx context.Context) {
	delay := initialBackoff
	for {
		conn, err := (&net.Dialer{Timeout: dialTimeout}).DialContext(ctx, "tcp", b.addr)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Debug("gui connection failed", "addr", b.addr, "err", err, "retry_in", delay)
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			if delay < maxBackoff {
				delay *= 2
			}
			continue
		}
		delay = initialBackoff
		slog.Info("connected to gui", "addr", b.addr)
		b.runSession(ctx, conn)
		if ctx.Err() != nil {
			return
		}
		slog.Warn("gui disconnected, reconnecting")
	}
}

func (b *Bridge) runSession(ctx context.Context, conn net.Conn) {
	wc := wire.New(conn, b.key)
	defer wc.Close()

	handshake := event.ServiceConnected{
		Header:       event.NewHeader(event.TypeServiceConnected, time.Now()),
		Platform:     platformName(),
		Capabilities: Capabilities,
	}
	if err := wc.WriteJSON(handshake); err != nil {
		slog.Error("handshake failed", "err", err)
		return
	}

	b.connected.Store(true)
	defer b.connected.Store(false)

	// Close the connection when ctx ends so the reader unblocks.
	stop := context.AfterFunc(ctx, func() { wc.Close() })
	defer stop()

	// Writer: drain queued events onto the wire.
	readerDone := make(chan struct{})
	go func() {
		for {
			select {
			case <-readerDone:
				return
			case ev := <-b.sendCh:
				if err := wc.WriteJSON(ev); err != nil {
					slog.Error("gui write failed", "err", err)
					wc.Close()
					return
				}
			}
		}
	}()

	// Reader: inbound commands until the connection drops.
	defer close(readerDone)
	for {
		raw, err := wc.ReadRaw()
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
				slog.Info("gui connection closed", "err", err)
			}
			return
		}
		b.dispatch(raw)
	}
}

func platformName() string {
	switch runtime.GOOS {
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "linux":
		return "Linux"
	default:
		return runtime.GOOS
	}
}

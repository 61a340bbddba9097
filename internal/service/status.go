package service

import (
	"net"
	"runtime"

	"github.com/Larksa/process-capture-studio/internal/wire"
)

// Control message types on the local socket.
const (
	ControlStatus         = "status"
	ControlStatusResponse = "status_response"
)

// ControlRequest is a request on the control socket.
type ControlRequest struct {
	Type string `json:"type"`
}

// Status is the daemon snapshot returned to the status CLI.
type Status struct {
	Type          string   `json:"type"`
	Platform      string   `json:"platform"`
	GUIAddr       string   `json:"gui_addr"`
	GUIConnected  bool     `json:"gui_connected"`
	EventsDropped int64    `json:"events_dropped"`
	LedgerEntries int      `json:"ledger_entries"`
	QueueDepth    int      `json:"queue_depth"`
	WatchPaths    []string `json:"watch_paths"`
	Clipboard     string   `json:"clipboard_backend"`
}

// Snapshot builds the current Status.
func (s *Service) Snapshot() Status {
	return Status{
		Type:          ControlStatusResponse,
		Platform:      runtime.GOOS,
		GUIAddr:       s.cfg.GUIAddr,
		GUIConnected:  s.bridge.Connected(),
		EventsDropped: s.bridge.Dropped(),
		LedgerEntries: s.ledger.Len(),
		QueueDepth:    s.queue.Len(),
		WatchPaths:    s.watcher.Paths(),
		Clipboard:     s.backend.Name(),
	}
}

// handleControl answers one request per connection, mirroring the wire's
// one-line-per-message framing.
func (s *Service) handleControl(conn net.Conn) {
	defer conn.Close()
	wc := wire.New(conn, nil)

	var req ControlRequest
	if err := wc.ReadJSON(&req); err != nil {
		return
	}
	if req.Type != ControlStatus {
		return
	}
	_ = wc.WriteJSON(s.Snapshot())
}

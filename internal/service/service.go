// Package service wires the capture subsystems together and owns their
// lifecycle: clipboard and selection monitors, the file watcher, the paste
// correlator, the event queue, and the GUI bridge.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/Larksa/process-capture-studio/internal/appcontext"
	"github.com/Larksa/process-capture-studio/internal/bridge"
	"github.com/Larksa/process-capture-studio/internal/classify"
	"github.com/Larksa/process-capture-studio/internal/clip"
	"github.com/Larksa/process-capture-studio/internal/correlate"
	"github.com/Larksa/process-capture-studio/internal/crypto"
	"github.com/Larksa/process-capture-studio/internal/event"
	"github.com/Larksa/process-capture-studio/internal/fswatch"
	"github.com/Larksa/process-capture-studio/internal/ipc"
	"github.com/Larksa/process-capture-studio/internal/ledger"
	"github.com/Larksa/process-capture-studio/internal/monitor"
)

// Config controls the capture service.
type Config struct {
	// WatchPaths are the directory roots for the file watcher.
	// Empty means DefaultWatchPaths.
	WatchPaths []string

	// GUIAddr is the companion GUI's event socket.
	GUIAddr string

	// Token, when set, encrypts the GUI link with a key derived from it.
	Token string

	// HistorySize caps the clipboard ledger. <= 0 means the default.
	HistorySize int

	// SelectionInterval is the spreadsheet selection poll period.
	SelectionInterval time.Duration
}

// DefaultWatchPaths returns the user directories watched when none are
// configured: Downloads, Desktop and Documents.
func DefaultWatchPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, "Downloads"),
		filepath.Join(home, "Desktop"),
		filepath.Join(home, "Documents"),
	}
}

// Service is the assembled capture daemon.
type Service struct {
	cfg Config

	queue      *event.Queue
	ledger     *ledger.Ledger
	backend    clip.Backend
	provider   appcontext.Provider
	clipMon    *monitor.Clipboard
	selMon     *monitor.Selection
	watcher    *fswatch.Watcher
	correlator *correlate.Correlator
	bridge     *bridge.Bridge
}

// New assembles a Service from cfg. The clipboard backend and context
// provider are platform-selected here; tests build the pieces directly.
func New(cfg Config) (*Service, error) {
	if len(cfg.WatchPaths) == 0 {
		cfg.WatchPaths = DefaultWatchPaths()
	}

	var key *crypto.Key
	if cfg.Token != "" {
		var err error
		key, err = crypto.DeriveKey(cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("key derivation: %w", err)
		}
	}

	queue := event.NewQueue()
	led := ledger.New(cfg.HistorySize)
	provider := appcontext.New()
	backend := clip.New()

	classifier := classify.New(provider)
	correlator := correlate.New(led, classifier, queue)

	watcher, err := fswatch.New(queue)
	if err != nil {
		return nil, fmt.Errorf("file watcher: %w", err)
	}
	for _, p := range cfg.WatchPaths {
		if err := watcher.Add(p); err != nil {
			slog.Warn("watch registration failed", "path", p, "err", err)
		}
	}

	return &Service{
		cfg:        cfg,
		queue:      queue,
		ledger:     led,
		backend:    backend,
		provider:   provider,
		clipMon:    monitor.NewClipboard(backend, provider, led, queue),
		selMon:     monitor.NewSelection(provider, queue, cfg.SelectionInterval),
		watcher:    watcher,
		correlator: correlator,
		bridge:     bridge.New(cfg.GUIAddr, key, correlator),
	}, nil
}

// Run starts every subsystem and blocks until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	slog.Info("capture service starting",
		"gui_addr", s.cfg.GUIAddr,
		"watch_paths", s.watcher.Paths(),
		"clipboard", s.backend.Name(),
	)

	defer s.backend.Close()
	defer s.watcher.Close()
	defer s.queue.Close()

	if ln, err := ipc.Listen(); err != nil {
		slog.Warn("control socket unavailable", "err", err)
	} else {
		slog.Info("control socket listening", "path", ipc.SocketPath())
		defer ln.Close()
		go s.serveControl(ctx, ln)
	}

	go s.clipMon.Run(ctx)
	go s.selMon.Run(ctx)
	go s.watcher.Run(ctx)
	go s.bridge.Run(ctx)

	s.forward(ctx)

	slog.Info("capture service stopped")
	return nil
}

// forward is the single consumer of the event queue: everything captured
// goes to the GUI, best-effort.
func (s *Service) forward(ctx context.Context) {
	for {
		ev, ok := s.queue.Get(ctx)
		if !ok {
			return
		}
		s.bridge.Send(ev)
	}
}

func (s *Service) serveControl(ctx context.Context, ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		go s.handleControl(conn)
	}
}

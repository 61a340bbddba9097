// Package fswatch watches user directories and turns raw file-system
// notifications into activity events.
//
// fsnotify reports a move as Rename(old path) followed by Create(new path);
// a short correlation window pairs the two into a single file_moved event.
// A Rename that never finds its Create degrades to file_deleted.
package fswatch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Larksa/process-capture-studio/internal/event"
)

// moveWindow is how long a Rename waits for its matching Create.
const moveWindow = 500 * time.Millisecond

// ignoredPathParts are skipped entirely, files and directories both.
var ignoredPathParts = []string{
	".git", "__pycache__", "node_modules", ".DS_Store",
	"Thumbs.db", ".pytest_cache", ".vscode", ".idea",
}

// relevantExtensions limits file_modified noise to document-like files.
var relevantExtensions = map[string]bool{
	".xlsx": true, ".docx": true, ".pdf": true, ".csv": true,
	".txt": true, ".json": true, ".xml": true,
}

// Sink accepts the produced events; satisfied by *event.Queue.
type Sink interface {
	Put(event.Event)
}

// Watcher monitors a set of directory trees.
type Watcher struct {
	fsw   *fsnotify.Watcher
	sink  Sink
	clock func() time.Time
	paths []string
	moves *moveTracker
}

// New creates a Watcher. Call Add for each root, then Run.
func New(sink Sink) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:   fsw,
		sink:  sink,
		clock: time.Now,
		moves: newMoveTracker(moveWindow),
	}, nil
}

// SetClock replaces the time source. Test hook.
func (w *Watcher) SetClock(clock func() time.Time) {
	w.clock = clock
	w.moves.clock = clock
}

// Paths returns the roots being watched.
func (w *Watcher) Paths() []string { return w.paths }

// Add registers root and all its subdirectories. Missing roots are skipped
// with a warning rather than failing startup.
func (w *Watcher) Add(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		slog.Warn("watch path unavailable, skipping", "path", root, "err", err)
		return nil
	}
	w.paths = append(w.paths, root)
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if ShouldIgnore(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			slog.Warn("watch failed", "path", path, "err", err)
		}
		return nil
	})
}

// Close stops the underlying notifier.
func (w *Watcher) Close() error { return w.fsw.Close() }

// Run consumes notifications until ctx is done. Errors from the notifier
// are logged and the loop continues.
func (w *Watcher) Run(ctx context.Context) {
	slog.Info("file watcher started", "paths", w.paths)
	for {
		var flush <-chan time.Time
		if w.moves.active() {
			flush = time.After(w.moves.remaining(w.clock()))
		}
		select {
		case <-ctx.Done():
			return
		case <-flush:
			if path, ok := w.moves.expire(w.clock()); ok {
				w.emitDeleted(path)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", "err", err)
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ShouldIgnore(ev.Name) {
		return
	}

	switch {
	case ev.Has(fsnotify.Rename):
		if stale, ok := w.moves.note(ev.Name, w.clock()); ok {
			w.emitDeleted(stale)
		}

	case ev.Has(fsnotify.Create):
		// Directories need watching; their creation is not an activity event.
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(ev.Name); err != nil {
				slog.Warn("watch failed", "path", ev.Name, "err", err)
			}
			return
		}
		if src, ok := w.moves.claim(w.clock()); ok {
			w.emit(event.FileEvent{
				Header:     event.NewHeader(event.TypeFileMoved, w.clock()),
				SourcePath: src,
				DestPath:   ev.Name,
				Filename:   filepath.Base(ev.Name),
				Extension:  filepath.Ext(ev.Name),
				Context:    PathContext(ev.Name),
			})
			return
		}
		w.emit(event.FileEvent{
			Header:    event.NewHeader(event.TypeFileCreated, w.clock()),
			Path:      ev.Name,
			Filename:  filepath.Base(ev.Name),
			Extension: filepath.Ext(ev.Name),
			Context:   PathContext(ev.Name),
		})

	case ev.Has(fsnotify.Remove):
		w.emitDeleted(ev.Name)

	case ev.Has(fsnotify.Write):
		ext := strings.ToLower(filepath.Ext(ev.Name))
		if !relevantExtensions[ext] {
			return
		}
		fe := event.FileEvent{
			Header:    event.NewHeader(event.TypeFileModified, w.clock()),
			Path:      ev.Name,
			Filename:  filepath.Base(ev.Name),
			Extension: filepath.Ext(ev.Name),
		}
		if info, err := os.Stat(ev.Name); err == nil {
			fe.Size = info.Size()
		}
		w.emit(fe)
	}
}

func (w *Watcher) emitDeleted(path string) {
	w.emit(event.FileEvent{
		Header:    event.NewHeader(event.TypeFileDeleted, w.clock()),
		Path:      path,
		Filename:  filepath.Base(path),
		Extension: filepath.Ext(path),
	})
}

func (w *Watcher) emit(ev event.FileEvent) {
	w.sink.Put(ev)
	slog.Debug("file event", "type", ev.Type, "path", ev.Path, "dest", ev.DestPath)
}

// ShouldIgnore reports whether path falls under a noise directory.
func ShouldIgnore(path string) bool {
	for _, part := range ignoredPathParts {
		if strings.Contains(path, part) {
			return true
		}
	}
	return false
}

// PathContext derives the location flags for a file event.
func PathContext(path string) *event.FileContext {
	return &event.FileContext{
		IsDownload:  strings.Contains(path, "Downloads"),
		IsDesktop:   strings.Contains(path, "Desktop"),
		IsDocuments: strings.Contains(path, "Documents"),
		IsCloud: strings.Contains(path, "Dropbox") ||
			strings.Contains(path, "OneDrive") ||
			strings.Contains(path, "Google Drive") ||
			strings.Contains(path, "iCloud"),
		ParentFolder: filepath.Base(filepath.Dir(path)),
	}
}

// Package monitor runs the periodic capture loops: clipboard changes and
// live spreadsheet selections. Both are cancellable background activities
// that swallow transient platform failures and retry on the next tick.
package monitor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Larksa/process-capture-studio/internal/appcontext"
	"github.com/Larksa/process-capture-studio/internal/classify"
	"github.com/Larksa/process-capture-studio/internal/event"
	"github.com/Larksa/process-capture-studio/internal/ledger"
)

// Sink accepts the produced events; satisfied by *event.Queue.
type Sink interface {
	Put(event.Event)
}

// Clipboard watches a clip backend, enriches each new capture with source
// context, records it in the ledger, and emits a clipboard_copy event.
type Clipboard struct {
	backend  Backend
	provider appcontext.Provider
	ledger   *ledger.Ledger
	sink     Sink

	last string
}

// Backend is the watch-and-read clipboard surface monitor needs,
// satisfied by clip.Backend.
type Backend interface {
	ReadText() (string, error)
	Watch() <-chan struct{}
}

// NewClipboard wires a clipboard monitor.
func NewClipboard(backend Backend, provider appcontext.Provider, l *ledger.Ledger, sink Sink) *Clipboard {
	return &Clipboard{
		backend:  backend,
		provider: provider,
		ledger:   l,
		sink:     sink,
	}
}

// Run consumes backend change signals until ctx is done. Read failures are
// logged and retried on the next signal.
func (m *Clipboard) Run(ctx context.Context) {
	slog.Info("clipboard monitoring started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("clipboard monitoring stopped")
			return
		case <-m.backend.Watch():
			content, err := m.backend.ReadText()
			if err != nil {
				slog.Warn("clipboard read failed", "err", err)
				continue
			}
			m.Capture(content)
		}
	}
}

// Capture records one clipboard observation. Empty content and redundant
// re-reads of the previous content are suppressed.
func (m *Clipboard) Capture(content string) {
	if content == "" || content == m.last {
		return
	}
	m.last = content

	source, selection := m.sourceContext()
	entry := m.ledger.Record(content, source, selection)

	ev := event.ClipboardCopy{
		Header:         event.NewHeader(event.TypeClipboardCopy, entry.Timestamp),
		Content:        entry.Content,
		ContentPreview: entry.Preview,
		DataType:       entry.DataType,
		Source:         source,
		Length:         entry.Length,
		Lines:          entry.Lines,
		ExcelCells:     selection,
	}
	m.sink.Put(ev)

	slog.Debug("clipboard captured",
		"preview", entry.Preview,
		"data_type", entry.DataType,
		"application", source.Application,
	)
}

// sourceContext interrogates the platform for the copying application.
// All failures degrade to unknown fields.
func (m *Clipboard) sourceContext() (event.Context, *event.SheetSelection) {
	ctx := event.Context{
		Application: appcontext.Unknown,
		WindowTitle: appcontext.Unknown,
		Type:        event.AppUnknown,
	}

	win, err := m.provider.ActiveWindow()
	if err != nil {
		if !errors.Is(err, appcontext.ErrUnavailable) {
			slog.Debug("active window query failed", "err", err)
		}
		return ctx, nil
	}
	ctx.Application = win.Application
	ctx.WindowTitle = win.Title
	ctx.Type = event.InferAppType(win.Application)
	ctx.Document = classify.ExtractDocumentName(win.Title, win.Application)

	var selection *event.SheetSelection
	if ctx.Type == event.AppSpreadsheet {
		if sel, err := m.provider.SpreadsheetSelection(); err == nil {
			selection = sel
			ctx.Document = sel.Workbook
			ctx.Path = sel.Path
			ctx.Sheet = sel
		}
	}
	return ctx, selection
}

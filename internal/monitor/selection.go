package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/Larksa/process-capture-studio/internal/appcontext"
	"github.com/Larksa/process-capture-studio/internal/event"
)

// DefaultSelectionInterval is how often the live spreadsheet selection is
// polled while a spreadsheet application is reachable.
const DefaultSelectionInterval = time.Second

// Selection polls the live spreadsheet selection and emits excel_selection
// events when it moves. An unreachable spreadsheet application just means
// no events this tick.
type Selection struct {
	provider appcontext.Provider
	sink     Sink
	interval time.Duration
	clock    func() time.Time

	lastAddress string
}

// NewSelection wires a selection monitor. interval <= 0 uses the default.
func NewSelection(provider appcontext.Provider, sink Sink, interval time.Duration) *Selection {
	if interval <= 0 {
		interval = DefaultSelectionInterval
	}
	return &Selection{
		provider: provider,
		sink:     sink,
		interval: interval,
		clock:    time.Now,
	}
}

// SetClock replaces the time source. Test hook.
func (m *Selection) SetClock(clock func() time.Time) { m.clock = clock }

// Run polls until ctx is done.
func (m *Selection) Run(ctx context.Context) {
	t := time.NewTicker(m.interval)
	defer t.Stop()
	slog.Info("spreadsheet selection monitoring started", "interval", m.interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Poll()
		}
	}
}

// Poll takes one selection reading and emits an event if it changed.
func (m *Selection) Poll() {
	sel, err := m.provider.SpreadsheetSelection()
	if err != nil {
		// Spreadsheet not running or automation unavailable. Retry next tick.
		return
	}
	if sel.Address == m.lastAddress {
		return
	}
	m.lastAddress = sel.Address

	m.sink.Put(event.ExcelSelection{
		Header:       event.NewHeader(event.TypeExcelSelection, m.clock()),
		Address:      sel.Address,
		Sheet:        sel.Sheet,
		Workbook:     sel.Workbook,
		WorkbookPath: sel.Path,
	})
	slog.Debug("spreadsheet selection", "address", sel.Address, "sheet", sel.Sheet)
}

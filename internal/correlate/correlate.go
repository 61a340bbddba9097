// Package correlate matches paste signals from the GUI with the most recent
// clipboard copy to produce unified cross-application data-flow events.
package correlate

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Larksa/process-capture-studio/internal/classify"
	"github.com/Larksa/process-capture-studio/internal/event"
	"github.com/Larksa/process-capture-studio/internal/ledger"
)

// incompleteDescription is the literal the GUI renders when either side of
// the paste could not be established.
const incompleteDescription = "Paste operation (incomplete context)"

// Sink accepts the emitted events; satisfied by *event.Queue.
type Sink interface {
	Put(event.Event)
}

// Correlator builds CrossAppPaste events. One per paste signal, always —
// missing context degrades the event, it never suppresses it.
type Correlator struct {
	ledger     *ledger.Ledger
	classifier *classify.Classifier
	sink       Sink
	clock      func() time.Time
}

// New wires a Correlator to its ledger, classifier and sink.
func New(l *ledger.Ledger, c *classify.Classifier, sink Sink) *Correlator {
	return &Correlator{ledger: l, classifier: c, sink: sink, clock: time.Now}
}

// SetClock replaces the time source. Test hook.
func (c *Correlator) SetClock(clock func() time.Time) { c.clock = clock }

// OnPasteSignal handles a capture_paste_destination command. The signal
// timestamp is the GUI's and is carried through opaquely. The destination
// query may block on platform automation for up to a few seconds; callers
// run this off the clipboard-polling path.
//
// The source candidate is the latest ledger entry, not a timestamp-bounded
// search: paste signals are assumed to follow their triggering copy within
// the session. A stale copy can therefore be misattributed; see DESIGN.md.
func (c *Correlator) OnPasteSignal(signalTimestamp, appName, windowTitle string) event.CrossAppPaste {
	dst := c.classifier.Classify(appName, windowTitle)

	ev := event.CrossAppPaste{
		Header:         event.NewHeader(event.TypeCrossAppPaste, c.clock()),
		PasteTimestamp: signalTimestamp,
		Destination:    &dst,
	}

	if entry, ok := c.ledger.Latest(); ok {
		src := sourceContext(entry)
		ev.Source = &src
	}

	if ev.Source != nil && ev.Destination != nil {
		from := classify.Label(*ev.Source)
		to := classify.Label(*ev.Destination)
		ev.DataFlow = event.DataFlow{
			From:           from,
			To:             to,
			Transformation: classify.Transformation(ev.Source.Type, ev.Destination.Type),
		}
		ev.Description = fmt.Sprintf("Pasted from %s to %s", from, to)
		slog.Info("cross-app paste", "from", from, "to", to, "transformation", ev.DataFlow.Transformation)
	} else {
		ev.Description = incompleteDescription
		slog.Debug("paste signal without source context", "application", appName)
	}

	c.sink.Put(ev)
	return ev
}

// sourceContext rebuilds the source side of a paste from a ledger entry.
// A recorded spreadsheet selection promotes the entry to a structured
// spreadsheet source; otherwise the type is inferred from the app name.
func sourceContext(entry ledger.Entry) event.Context {
	src := entry.Source
	if entry.Selection != nil {
		src.Type = event.AppSpreadsheet
		src.Sheet = entry.Selection
		src.Document = entry.Selection.Workbook
		src.Path = entry.Selection.Path
	} else if src.Type == "" {
		src.Type = event.InferAppType(src.Application)
	}
	return src
}

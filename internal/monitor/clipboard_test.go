package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Larksa/process-capture-studio/internal/appcontext"
	"github.com/Larksa/process-capture-studio/internal/event"
	"github.com/Larksa/process-capture-studio/internal/ledger"
)

type recordingSink struct {
	events []event.Event
}

func (s *recordingSink) Put(ev event.Event) { s.events = append(s.events, ev) }

func TestCaptureEmitsClipboardCopy(t *testing.T) {
	l := ledger.New(5)
	sink := &recordingSink{}
	provider := &appcontext.Static{
		Window: appcontext.Window{Application: "Microsoft Word", Title: "Report.docx - Microsoft Word"},
	}
	m := NewClipboard(nil, provider, l, sink)

	m.Capture("hello world")

	require.Len(t, sink.events, 1)
	ev := sink.events[0].(event.ClipboardCopy)
	assert.Equal(t, event.TypeClipboardCopy, ev.Kind())
	assert.Equal(t, "hello world", ev.Content)
	assert.Equal(t, event.ContentText, ev.DataType)
	assert.Equal(t, "Microsoft Word", ev.Source.Application)
	assert.Equal(t, event.AppDocument, ev.Source.Type)
	assert.Equal(t, "Report.docx", ev.Source.Document)
	assert.Nil(t, ev.ExcelCells)

	assert.Equal(t, 1, l.Len())
	entry, ok := l.Latest()
	require.True(t, ok)
	assert.Equal(t, "hello world", entry.Content)
}

func TestCaptureSkipsEmptyAndDuplicate(t *testing.T) {
	l := ledger.New(5)
	sink := &recordingSink{}
	m := NewClipboard(nil, &appcontext.Static{}, l, sink)

	m.Capture("")
	m.Capture("once")
	m.Capture("once")
	m.Capture("twice")

	assert.Len(t, sink.events, 2)
	assert.Equal(t, 2, l.Len())
}

func TestCaptureSpreadsheetSelection(t *testing.T) {
	l := ledger.New(5)
	sink := &recordingSink{}
	provider := &appcontext.Static{
		Window: appcontext.Window{Application: "Microsoft Excel", Title: "Sales.xlsx - Excel"},
		Selection: &event.SheetSelection{
			Sheet:    "Q1",
			Address:  "A1:B2",
			Workbook: "Sales.xlsx",
			Path:     "/Users/jo/Sales.xlsx",
		},
	}
	m := NewClipboard(nil, provider, l, sink)

	m.Capture("42\t43")

	require.Len(t, sink.events, 1)
	ev := sink.events[0].(event.ClipboardCopy)
	assert.Equal(t, event.ContentTabular, ev.DataType)
	require.NotNil(t, ev.ExcelCells)
	assert.Equal(t, "A1:B2", ev.ExcelCells.Address)
	assert.Equal(t, "Sales.xlsx", ev.Source.Document)
	assert.Equal(t, event.AppSpreadsheet, ev.Source.Type)

	entry, ok := l.Latest()
	require.True(t, ok)
	require.NotNil(t, entry.Selection)
	assert.Equal(t, "A1:B2", entry.Selection.Address)
}

func TestCaptureWindowUnavailable(t *testing.T) {
	l := ledger.New(5)
	sink := &recordingSink{}
	provider := &appcontext.Static{WindowErr: appcontext.ErrUnavailable}
	m := NewClipboard(nil, provider, l, sink)

	m.Capture("orphan content")

	require.Len(t, sink.events, 1)
	ev := sink.events[0].(event.ClipboardCopy)
	assert.Equal(t, appcontext.Unknown, ev.Source.Application)
	assert.Equal(t, event.AppUnknown, ev.Source.Type)
}

func TestSelectionPollDedupes(t *testing.T) {
	sink := &recordingSink{}
	provider := &appcontext.Static{
		Selection: &event.SheetSelection{Sheet: "Q1", Address: "A1", Workbook: "Sales.xlsx"},
	}
	m := NewSelection(provider, sink, time.Second)

	m.Poll()
	m.Poll()
	require.Len(t, sink.events, 1)
	assert.Equal(t, "A1", sink.events[0].(event.ExcelSelection).Address)

	provider.Selection = &event.SheetSelection{Sheet: "Q1", Address: "B3", Workbook: "Sales.xlsx"}
	m.Poll()
	require.Len(t, sink.events, 2)
	assert.Equal(t, "B3", sink.events[1].(event.ExcelSelection).Address)
}

func TestSelectionPollUnavailable(t *testing.T) {
	sink := &recordingSink{}
	m := NewSelection(&appcontext.Static{}, sink, time.Second)

	m.Poll()
	assert.Empty(t, sink.events)
}

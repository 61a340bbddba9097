package ledger

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Larksa/process-capture-studio/internal/event"
)

func testClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestLedgerEviction(t *testing.T) {
	l := New(5)
	l.SetClock(testClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))

	for i := 0; i < 12; i++ {
		l.Record(fmt.Sprintf("content-%d", i), event.Context{}, nil)
	}

	require.Equal(t, 5, l.Len())
	entries := l.Entries()
	// The 5 most recent, oldest first.
	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("content-%d", i+7), e.Content)
	}
	assert.True(t, entries[0].Timestamp.Before(entries[4].Timestamp))
}

func TestLedgerLatest(t *testing.T) {
	l := New(0) // default capacity

	_, ok := l.Latest()
	assert.False(t, ok)

	l.Record("first", event.Context{Application: "Excel"}, nil)
	l.Record("second", event.Context{Application: "Chrome"}, nil)

	e, ok := l.Latest()
	require.True(t, ok)
	assert.Equal(t, "second", e.Content)
	assert.Equal(t, "Chrome", e.Source.Application)
}

func TestLedgerMostRecentBefore(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := New(10)
	l.SetClock(testClock(start))

	l.Record("a", event.Context{}, nil) // 12:00:01
	l.Record("b", event.Context{}, nil) // 12:00:02
	l.Record("c", event.Context{}, nil) // 12:00:03

	e, ok := l.MostRecentBefore(start.Add(2500 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, "b", e.Content)

	// Exact timestamp match counts.
	e, ok = l.MostRecentBefore(start.Add(2 * time.Second))
	require.True(t, ok)
	assert.Equal(t, "b", e.Content)

	// Everything is after t.
	_, ok = l.MostRecentBefore(start)
	assert.False(t, ok)

	// Empty ledger.
	_, ok = New(10).MostRecentBefore(start)
	assert.False(t, ok)
}

func TestRecordEnrichment(t *testing.T) {
	l := New(10)
	sel := &event.SheetSelection{Sheet: "Q1", Address: "$B$1:$C$1", Workbook: "Sheet1.xlsx"}

	content := "name\tvalue\nalpha\t1"
	e := l.Record(content, event.Context{Application: "Microsoft Excel"}, sel)

	assert.Equal(t, event.ContentTabular, e.DataType)
	assert.Equal(t, len(content), e.Length)
	assert.Equal(t, 2, e.Lines)
	assert.Equal(t, sel, e.Selection)
	assert.Equal(t, uint64(1), e.Seq)
}

func TestRecordCapsContent(t *testing.T) {
	l := New(10)
	big := strings.Repeat("x", 5000)

	e := l.Record(big, event.Context{}, nil)
	assert.Len(t, e.Content, 1000)
	assert.Equal(t, 5000, e.Length)
	assert.Equal(t, big[:50]+"...", e.Preview)
}

func TestRecordCapsContentOnRuneBoundaries(t *testing.T) {
	l := New(10)
	big := strings.Repeat("€", 1200) // 3 bytes each

	e := l.Record(big, event.Context{}, nil)
	assert.True(t, utf8.ValidString(e.Content))
	assert.True(t, utf8.ValidString(e.Preview))
	assert.Equal(t, 1000, utf8.RuneCountInString(e.Content))
	assert.Equal(t, strings.Repeat("€", 50)+"...", e.Preview)
	assert.Equal(t, 1200, e.Length)
}

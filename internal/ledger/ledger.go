// Package ledger keeps the bounded, time-ordered history of clipboard copy
// events the paste correlator matches against. Entries are enriched with the
// detected content type and the source-application context at copy time, and
// are immutable once recorded.
package ledger

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Larksa/process-capture-studio/internal/event"
)

const (
	// DefaultCapacity is the number of entries kept before the oldest is dropped.
	DefaultCapacity = 50

	// maxContent caps the raw clipboard content an entry retains, in runes.
	maxContent = 1000

	previewLength = 50
)

// Entry is one recorded clipboard copy.
type Entry struct {
	Seq       uint64
	Timestamp time.Time
	Content   string
	Preview   string
	DataType  event.ContentType
	Length    int
	Lines     int
	Source    event.Context
	Selection *event.SheetSelection
}

// Ledger is a fixed-capacity append-only ring of Entries, oldest first.
type Ledger struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	seq      uint64
	clock    func() time.Time
}

// New returns a Ledger holding at most capacity entries.
// A capacity <= 0 falls back to DefaultCapacity.
func New(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ledger{capacity: capacity, clock: time.Now}
}

// SetClock replaces the time source. Test hook.
func (l *Ledger) SetClock(clock func() time.Time) { l.clock = clock }

// Record builds an Entry for content copied from source and appends it,
// evicting the oldest entry once the ring is full. sel is the structured
// spreadsheet selection, when the source exposed one.
func (l *Ledger) Record(content string, source event.Context, sel *event.SheetSelection) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	e := Entry{
		Seq:       l.seq,
		Timestamp: l.clock(),
		Content:   capContent(content),
		Preview:   Preview(content, previewLength),
		DataType:  DetectType(content),
		Length:    utf8.RuneCountInString(content),
		Lines:     countLines(content),
		Source:    source,
		Selection: sel,
	}

	l.entries = append(l.entries, e)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[1:]
	}
	return e
}

// Latest returns the most recent entry, or false if the ledger is empty.
func (l *Ledger) Latest() (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// MostRecentBefore scans newest to oldest and returns the first entry whose
// timestamp is at or before t.
func (l *Ledger) MostRecentBefore(t time.Time) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(l.entries) - 1; i >= 0; i-- {
		if !l.entries[i].Timestamp.After(t) {
			return l.entries[i], true
		}
	}
	return Entry{}, false
}

// Len reports how many entries are currently held.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Entries returns a copy of the current history, oldest first.
func (l *Ledger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func capContent(s string) string {
	return truncate(s, maxContent)
}

func countLines(s string) int {
	if !strings.Contains(s, "\n") {
		return 1
	}
	return strings.Count(s, "\n") + 1
}

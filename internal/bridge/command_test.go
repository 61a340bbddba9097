package bridge

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Larksa/process-capture-studio/internal/event"
)

type recordingHandler struct {
	mu         sync.Mutex
	timestamps []string
	apps       []string
	windows    []string
}

func (h *recordingHandler) OnPasteSignal(timestamp, appName, windowTitle string) event.CrossAppPaste {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.timestamps = append(h.timestamps, timestamp)
	h.apps = append(h.apps, appName)
	h.windows = append(h.windows, windowTitle)
	return event.CrossAppPaste{}
}

func (h *recordingHandler) signals() (timestamps, apps, windows []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.timestamps...),
		append([]string(nil), h.apps...),
		append([]string(nil), h.windows...)
}

func TestDispatchCapturePasteDestination(t *testing.T) {
	h := &recordingHandler{}
	b := New(DefaultAddr, nil, h)

	b.dispatch([]byte(`{"type":"capture_paste_destination","timestamp":"1705312800000","application":"Microsoft Word","window":"Report.docx - Word"}`))

	timestamps, apps, windows := h.signals()
	require.Len(t, timestamps, 1)
	assert.Equal(t, "1705312800000", timestamps[0])
	assert.Equal(t, "Microsoft Word", apps[0])
	assert.Equal(t, "Report.docx - Word", windows[0])
}

func TestDispatchNumericTimestamp(t *testing.T) {
	h := &recordingHandler{}
	b := New(DefaultAddr, nil, h)

	b.dispatch([]byte(`{"type":"capture_paste_destination","timestamp":1705312800000,"application":"Safari","window":"Inbox"}`))

	timestamps, _, _ := h.signals()
	require.Len(t, timestamps, 1)
	assert.Equal(t, "1705312800000", timestamps[0])
}

func TestDispatchIgnoresUnknownType(t *testing.T) {
	h := &recordingHandler{}
	b := New(DefaultAddr, nil, h)

	b.dispatch([]byte(`{"type":"reload_config"}`))
	timestamps, _, _ := h.signals()
	assert.Empty(t, timestamps)
}

func TestDispatchDiscardsMalformed(t *testing.T) {
	h := &recordingHandler{}
	b := New(DefaultAddr, nil, h)

	b.dispatch([]byte(`{not json`))
	timestamps, _, _ := h.signals()
	assert.Empty(t, timestamps)
}

func TestLooseString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string", `"1705312800000"`, "1705312800000"},
		{"number", `1705312800000`, "1705312800000"},
		{"float", `1705312800000.5`, "1705312800000.5"},
		{"null", `null`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s looseString
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &s))
			assert.Equal(t, tt.want, string(s))
		})
	}
}

func TestSendDropsWhenDisconnected(t *testing.T) {
	b := New(DefaultAddr, nil, &recordingHandler{})

	ev := event.ClipboardCopy{Content: "x"}
	b.Send(ev)
	assert.Equal(t, int64(1), b.Dropped())
	assert.False(t, b.Connected())
}

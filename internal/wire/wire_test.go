package wire

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Larksa/process-capture-studio/internal/crypto"
	"github.com/Larksa/process-capture-studio/internal/event"
)

func pipePair(t *testing.T, key *crypto.Key) (*Conn, *Conn) {
	t.Helper()
	a, b := net.Pipe()
	ca, cb := New(a, key), New(b, key)
	t.Cleanup(func() {
		ca.Close()
		cb.Close()
	})
	return ca, cb
}

func TestPlainRoundTrip(t *testing.T) {
	ca, cb := pipePair(t, nil)

	sent := event.ClipboardCopy{
		Header:  event.NewHeader(event.TypeClipboardCopy, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		Content: "hello",
	}
	go func() {
		_ = ca.WriteJSON(sent)
	}()

	var got event.ClipboardCopy
	require.NoError(t, cb.ReadJSON(&got))
	assert.Equal(t, sent.ID, got.ID)
	assert.Equal(t, event.TypeClipboardCopy, got.Type)
	assert.Equal(t, "hello", got.Content)
}

func TestEncryptedRoundTrip(t *testing.T) {
	key, err := crypto.DeriveKey("shared-token")
	require.NoError(t, err)
	ca, cb := pipePair(t, key)

	go func() {
		_ = ca.WriteJSON(map[string]string{"type": "ping"})
	}()

	var got map[string]string
	require.NoError(t, cb.ReadJSON(&got))
	assert.Equal(t, "ping", got["type"])
}

func TestEncryptedLineIsOpaque(t *testing.T) {
	key, err := crypto.DeriveKey("shared-token")
	require.NoError(t, err)
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	ca := New(a, key)

	go func() {
		_ = ca.WriteJSON(map[string]string{"secret": "payload"})
	}()

	buf := make([]byte, 4096)
	b.SetReadDeadline(time.Now().Add(time.Second))
	n, err := b.Read(buf)
	require.NoError(t, err)
	assert.NotContains(t, string(buf[:n]), "payload")
	assert.Equal(t, byte('\n'), buf[n-1])
}

func TestKeyMismatch(t *testing.T) {
	key, err := crypto.DeriveKey("shared-token")
	require.NoError(t, err)
	wrong, err := crypto.DeriveKey("other-token")
	require.NoError(t, err)

	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()
	ca, cb := New(a, key), New(b, wrong)

	go func() {
		_ = ca.WriteJSON(map[string]string{"type": "ping"})
	}()

	var got map[string]string
	assert.Error(t, cb.ReadJSON(&got))
}

func TestReadMultipleMessages(t *testing.T) {
	ca, cb := pipePair(t, nil)

	go func() {
		for _, n := range []int{1, 2, 3} {
			_ = ca.WriteJSON(map[string]int{"n": n})
		}
	}()

	for _, want := range []int{1, 2, 3} {
		var got map[string]int
		require.NoError(t, cb.ReadJSON(&got))
		assert.Equal(t, want, got["n"])
	}
}

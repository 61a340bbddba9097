package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	k1, err := DeriveKey("shared-token")
	require.NoError(t, err)
	k2, err := DeriveKey("shared-token")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := DeriveKey("other-token")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)
}

func TestSealOpenRoundTrip(t *testing.T) {
	key, err := DeriveKey("shared-token")
	require.NoError(t, err)

	plain := []byte(`{"type":"clipboard_copy","content":"hello"}`)
	ct, err := Seal(plain, key)
	require.NoError(t, err)
	assert.NotEqual(t, plain, ct)
	assert.Greater(t, len(ct), nonceSize)

	got, err := Open(ct, key)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestOpenWrongKey(t *testing.T) {
	key, err := DeriveKey("shared-token")
	require.NoError(t, err)
	wrong, err := DeriveKey("other-token")
	require.NoError(t, err)

	ct, err := Seal([]byte("secret"), key)
	require.NoError(t, err)

	_, err = Open(ct, wrong)
	assert.Error(t, err)
}

func TestOpenShortCiphertext(t *testing.T) {
	key, err := DeriveKey("shared-token")
	require.NoError(t, err)

	_, err = Open([]byte("tiny"), key)
	assert.Error(t, err)
}

func TestSealUniqueNonces(t *testing.T) {
	key, err := DeriveKey("shared-token")
	require.NoError(t, err)

	a, err := Seal([]byte("same message"), key)
	require.NoError(t, err)
	b, err := Seal([]byte("same message"), key)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

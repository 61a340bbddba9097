// Package crypto secures the GUI link with NaCl secretbox.
//
// The daemon and the GUI share a token; both derive the same 32-byte
// symmetric Key from it via HKDF-SHA256. Each sealed message carries its
// random 24-byte nonce up front:
//
//	[ 24-byte nonce ][ ciphertext ]
//
// With no token configured the wire layer runs with a nil *Key and sends
// plain JSON instead.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var hkdfInfo = []byte("process-capture-v1")

// Key is a secretbox symmetric key.
type Key [32]byte

// DeriveKey expands a shared token into a Key with HKDF-SHA256. The same
// token always yields the same key on both ends of the link.
func DeriveKey(token string) (*Key, error) {
	var key Key
	kdf := hkdf.New(sha256.New, []byte(token), nil, hkdfInfo)
	if _, err := io.ReadFull(kdf, key[:]); err != nil {
		return nil, fmt.Errorf("key derivation: %w", err)
	}
	return &key, nil
}

// Seal encrypts msg under key with a fresh random nonce and returns
// nonce+ciphertext.
func Seal(msg []byte, key *Key) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("nonce generation: %w", err)
	}
	return secretbox.Seal(nonce[:], msg, &nonce, (*[32]byte)(key)), nil
}

// Open decrypts a nonce+ciphertext blob produced by Seal.
func Open(blob []byte, key *Key) ([]byte, error) {
	if len(blob) < nonceSize {
		return nil, errors.New("ciphertext too short")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], blob[:nonceSize])
	msg, ok := secretbox.Open(nil, blob[nonceSize:], &nonce, (*[32]byte)(key))
	if !ok {
		return nil, errors.New("decryption failed (token mismatch?)")
	}
	return msg, nil
}

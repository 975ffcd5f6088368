// Package encryption implements the AES-256-GCM envelope used to encrypt
// Profile secrets at rest, keyed by an Argon2id-derived key (spec §4.2/§8).
// It is grounded on golang.org/x/crypto usage patterns seen across the
// example pack's TLS/identity-file handling, generalized to a standalone
// envelope since the teacher does not itself encrypt a local secrets file.
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/gravitational/trace"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize   = 16
	nonceSize  = 12
	keySize    = 32
	argonTime  = 1
	argonMem   = 64 * 1024 // KiB
	argonLanes = 4
)

// Envelope is the self-describing on-disk representation of an encrypted
// value: base64(salt) || "." || base64(nonce) || "." || base64(ciphertext).
type Envelope string

// DeriveKey stretches a master key (arbitrary-length passphrase or raw
// keyring bytes) into a 32-byte AES-256 key using Argon2id, scoped to salt.
func DeriveKey(masterKey, salt []byte) []byte {
	return argon2.IDKey(masterKey, salt, argonTime, argonMem, argonLanes, keySize)
}

// Seal encrypts plaintext under a fresh random salt and nonce, returning a
// self-contained Envelope.
func Seal(masterKey, plaintext []byte) (Envelope, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", trace.Wrap(err, "generating salt")
	}
	key := DeriveKey(masterKey, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", trace.Wrap(err, "constructing AES cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", trace.Wrap(err, "constructing GCM mode")
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", trace.Wrap(err, "generating nonce")
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	enc := base64.RawStdEncoding
	out := enc.EncodeToString(salt) + "." + enc.EncodeToString(nonce) + "." + enc.EncodeToString(ciphertext)
	return Envelope(out), nil
}

// Open decrypts an Envelope produced by Seal, deriving the same key from
// masterKey and the embedded salt.
func Open(masterKey []byte, envelope Envelope) ([]byte, error) {
	enc := base64.RawStdEncoding
	parts := splitN(string(envelope), '.', 3)
	if len(parts) != 3 {
		return nil, trace.BadParameter("malformed encryption envelope")
	}

	salt, err := enc.DecodeString(parts[0])
	if err != nil {
		return nil, trace.Wrap(err, "decoding salt")
	}
	nonce, err := enc.DecodeString(parts[1])
	if err != nil {
		return nil, trace.Wrap(err, "decoding nonce")
	}
	ciphertext, err := enc.DecodeString(parts[2])
	if err != nil {
		return nil, trace.Wrap(err, "decoding ciphertext")
	}

	key := DeriveKey(masterKey, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, trace.Wrap(err, "constructing AES cipher")
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, trace.Wrap(err, "constructing GCM mode")
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, trace.BadParameter("malformed encryption envelope: bad nonce size")
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, trace.AccessDenied("could not decrypt: wrong master key or corrupt data")
	}
	return plaintext, nil
}

// splitN splits s on sep into exactly n parts without the quadratic
// behavior of strings.Split when sep also legally occurs inside base64
// output (it never does here, but we split defensively by position).
func splitN(s string, sep byte, n int) []string {
	parts := make([]string, 0, n)
	start := 0
	for i := 0; i < len(s) && len(parts) < n-1; i++ {
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

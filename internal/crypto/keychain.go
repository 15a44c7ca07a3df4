// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	sealedPrefix = "v1:"
	saltSize     = 16
)

var (
	// ErrOpenFailed is returned when a sealed token cannot be opened: the
	// passphrase is wrong or the stored value is corrupted.
	ErrOpenFailed = errors.New("cannot open sealed token")

	// ErrPassphraseRequired is returned by the pass-through sealer when it
	// meets a value sealed under a passphrase.
	ErrPassphraseRequired = errors.New("stored token is sealed, passphrase required")
)

// NewTokenSealer returns a [TokenSealer] keyed by passphrase. An empty
// passphrase yields a pass-through sealer that stores tokens as is.
func NewTokenSealer(passphrase string) TokenSealer {
	if passphrase == "" {
		return plainSealer{}
	}
	return newPassphraseSealer(passphrase)
}

// passphraseSealer seals tokens with AES-256-GCM under an Argon2id key.
type passphraseSealer struct {
	passphrase []byte

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// newPassphraseSealer uses the Argon2id parameters recommended by OWASP
// (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func newPassphraseSealer(passphrase string) *passphraseSealer {
	return &passphraseSealer{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

func (s *passphraseSealer) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, s.argonKeyLen)
}

// Seal implements [TokenSealer]. A fresh salt and nonce are drawn for every
// call, so sealing the same token twice gives different outputs.
func (s *passphraseSealer) Seal(token string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := newGCM(s.deriveKey(salt))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(token)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(token), nil)

	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [TokenSealer].
func (s *passphraseSealer) Open(stored string) (string, error) {
	encoded, ok := strings.CutPrefix(stored, sealedPrefix)
	if !ok {
		return "", fmt.Errorf("%w: value is not sealed", ErrOpenFailed)
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrOpenFailed, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}

	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := newGCM(s.deriveKey(salt))
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrOpenFailed)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// An auth tag mismatch almost always means a different passphrase.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// plainSealer stores tokens unchanged.
type plainSealer struct{}

func (plainSealer) Seal(token string) (string, error) {
	return token, nil
}

func (plainSealer) Open(stored string) (string, error) {
	if strings.HasPrefix(stored, sealedPrefix) {
		return "", ErrPassphraseRequired
	}
	return stored, nil
}

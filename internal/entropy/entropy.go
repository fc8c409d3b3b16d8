// Package entropy provides cryptographically secure random byte
// generation and the scrub-on-exit lifecycle for entropy buffers.
package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/quillsec/phrasegen/internal/log"
)

// ErrNoSecureRandom is returned when the host exposes no working
// cryptographically secure random source.
var ErrNoSecureRandom = errors.New("no cryptographically secure random source available")

// MaxBytes caps a single generation request. Nothing in BIP-39 needs
// more than 32 bytes; a request anywhere near this limit is a caller bug.
const MaxBytes = 1024

// Source produces cryptographically secure random bytes. It is injected
// rather than reached for ambiently so tests can substitute a
// deterministic source.
type Source interface {
	Generate(n int) ([]byte, error)
}

// CryptoSource sources randomness from the operating system CSPRNG.
// It never falls back to a non-cryptographic generator: if the host
// source fails, generation fails.
type CryptoSource struct {
	// Reader overrides the random stream. Nil means crypto/rand.Reader.
	Reader io.Reader
}

// Generate returns n freshly allocated random bytes. Ownership
// transfers to the caller, which becomes responsible for scrubbing the
// buffer (see WithEntropy and Zero).
func (s CryptoSource) Generate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("entropy length %d: must be positive", n)
	}
	if n > MaxBytes {
		return nil, fmt.Errorf("entropy length %d: exceeds %d-byte cap", n, MaxBytes)
	}
	r := s.Reader
	if r == nil {
		r = rand.Reader
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSecureRandom, err)
	}
	// Only the size is logged, never the bytes.
	log.Entropy.Debug().Int("bytes", n).Msg("entropy generated")
	return b, nil
}

package mnemonic

import (
	"fmt"

	"github.com/quillsec/phrasegen/internal/entropy"
	"github.com/quillsec/phrasegen/internal/log"
	"github.com/quillsec/phrasegen/internal/wordlist"
)

// Generator runs the full derivation pipeline with injected
// capabilities: a random source and a digest provider.
type Generator struct {
	Source  entropy.Source
	Encoder Encoder
}

// NewGenerator returns a Generator backed by the OS CSPRNG and SHA-256.
func NewGenerator() *Generator {
	return &Generator{Source: entropy.CryptoSource{}}
}

// Generate derives a fresh phrase of the given strength in bits against
// list. The entropy buffer exists only inside the call and is zeroed on
// every exit path, success or failure, before Generate returns; only
// the words escape. Derivation is all-or-nothing: no partial phrase is
// ever returned.
func (g *Generator) Generate(strength int, list *wordlist.List) ([]string, error) {
	if list == nil {
		return nil, wordlist.ErrInvalidList
	}
	if !ValidStrength(strength) {
		return nil, fmt.Errorf("%w: got %d bits", ErrInvalidEntropyLength, strength)
	}

	var words []string
	err := entropy.WithEntropy(g.Source, strength/8, func(buf []byte) error {
		var err error
		words, err = g.Encoder.Encode(buf, list)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Mnemonic.Debug().
		Int("strength", strength).
		Int("words", len(words)).
		Msg("phrase derived")
	return words, nil
}

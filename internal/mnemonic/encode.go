// Package mnemonic implements the BIP-39 entropy-to-phrase pipeline:
// SHA-256 checksum, 11-bit grouping and wordlist mapping, plus the
// reverse mapping used to verify existing phrases.
package mnemonic

import (
	"errors"
	"fmt"

	"github.com/quillsec/phrasegen/internal/wordlist"
)

// Errors surfaced by the pipeline. Messages are display-ready; call
// sites add context with %w wrapping.
var (
	ErrInvalidEntropyLength = errors.New("entropy length must be 128, 160, 192, 224 or 256 bits")
	ErrHashFailure          = errors.New("checksum digest unavailable")
)

// bitsPerWord is fixed by the 2048-entry wordlist: 2^11 = 2048.
const bitsPerWord = 11

// Strengths lists the standard entropy sizes in bits, smallest first.
var Strengths = []int{128, 160, 192, 224, 256}

// ValidStrength reports whether bits is a standard entropy size.
func ValidStrength(bits int) bool {
	switch bits {
	case 128, 160, 192, 224, 256:
		return true
	}
	return false
}

// WordCount returns the phrase length produced by the given strength,
// or 0 if the strength is not a standard size. ENT + ENT/32 is always
// divisible by 11 for the five valid sizes.
func WordCount(strength int) int {
	if !ValidStrength(strength) {
		return 0
	}
	return (strength + strength/32) / bitsPerWord
}

// Encoder maps entropy onto a wordlist. A nil Digest means SHA-256.
type Encoder struct {
	Digest DigestProvider
}

func (e Encoder) digest() DigestProvider {
	if e.Digest == nil {
		return SHA256{}
	}
	return e.Digest
}

// Encode derives the phrase for ent: entropy bits followed by the
// leading ENT/32 bits of SHA-256(ent), MSB-first, split into 11-bit
// groups indexing list. The entropy length is re-checked here even
// though the pipeline validates it earlier, so a direct caller cannot
// produce a non-standard phrase.
//
// Encode is pure and deterministic: identical (ent, list) inputs always
// yield the identical word sequence. It never modifies or retains ent;
// scrubbing remains the caller's job.
func (e Encoder) Encode(ent []byte, list *wordlist.List) ([]string, error) {
	bits := len(ent) * 8
	if !ValidStrength(bits) {
		return nil, fmt.Errorf("%w: got %d bits", ErrInvalidEntropyLength, bits)
	}

	sum, err := e.digest().Sum(ent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashFailure, err)
	}

	checksumLen := bits / 32
	total := bits + checksumLen

	// bitAt reads the virtual concatenation of entropy bits and the
	// leading checksum bits, MSB-first within each byte.
	bitAt := func(i int) int {
		if i < bits {
			return int(ent[i/8]>>(7-uint(i%8))) & 1
		}
		j := i - bits
		return int(sum[j/8]>>(7-uint(j%8))) & 1
	}

	words := make([]string, 0, total/bitsPerWord)
	for g := 0; g < total/bitsPerWord; g++ {
		idx := 0
		for k := 0; k < bitsPerWord; k++ {
			idx = idx<<1 | bitAt(g*bitsPerWord+k)
		}
		words = append(words, list.Word(idx))
	}
	return words, nil
}

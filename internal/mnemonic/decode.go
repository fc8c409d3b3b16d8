package mnemonic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quillsec/phrasegen/internal/entropy"
	"github.com/quillsec/phrasegen/internal/wordlist"
)

// Errors surfaced while verifying an existing phrase.
var (
	ErrInvalidWordCount = errors.New("phrase must contain 12, 15, 18, 21 or 24 words")
	ErrUnknownWord      = errors.New("word is not in the wordlist")
	ErrChecksumMismatch = errors.New("phrase checksum does not match")
)

// strengthForWords maps a phrase length to its entropy strength in bits.
var strengthForWords = map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}

// Decode reverses Encode: it maps words back to 11-bit indices,
// reconstructs the bitstream, verifies the trailing checksum bits
// against a fresh digest of the recovered entropy, and returns the
// entropy bytes. The caller owns the returned buffer and must scrub it
// when done.
func (e Encoder) Decode(words []string, list *wordlist.List) ([]byte, error) {
	strength, ok := strengthForWords[len(words)]
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWordCount, len(words))
	}
	checksumLen := strength / 32
	total := strength + checksumLen

	stream := make([]byte, (total+7)/8)
	defer entropy.Zero(stream)

	pos := 0
	for _, w := range words {
		idx, ok := list.Index(w)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
		}
		for k := bitsPerWord - 1; k >= 0; k-- {
			if idx>>uint(k)&1 == 1 {
				stream[pos/8] |= 1 << (7 - uint(pos%8))
			}
			pos++
		}
	}

	ent := make([]byte, strength/8)
	copy(ent, stream[:strength/8])

	sum, err := e.digest().Sum(ent)
	if err != nil {
		entropy.Zero(ent)
		return nil, fmt.Errorf("%w: %v", ErrHashFailure, err)
	}
	for i := 0; i < checksumLen; i++ {
		got := stream[(strength+i)/8] >> (7 - uint((strength+i)%8)) & 1
		want := sum[i/8] >> (7 - uint(i%8)) & 1
		if got != want {
			entropy.Zero(ent)
			return nil, ErrChecksumMismatch
		}
	}
	return ent, nil
}

// Check reports whether phrase is a well-formed mnemonic over list:
// standard word count, every word present, checksum intact. The entropy
// recovered during verification is scrubbed before returning.
func (e Encoder) Check(phrase string, list *wordlist.List) error {
	ent, err := e.Decode(strings.Fields(phrase), list)
	if err != nil {
		return err
	}
	entropy.Zero(ent)
	return nil
}

// Package wordlist holds the 2048-word dictionary used for mnemonic
// encoding and gates every derivation on its validity.
package wordlist

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the exact number of words a valid list contains. Each word
// encodes 11 bits, so any other size breaks the encoding.
const Size = 2048

// ErrInvalidList is returned when a candidate wordlist fails validation.
var ErrInvalidList = errors.New("wordlist must contain exactly 2048 entries")

// List is an immutable, validated wordlist. Construct one through New,
// Load or English; the zero value is not usable.
type List struct {
	words []string
	index map[string]int
}

// New validates words and wraps them in a List. The gate must pass
// before any entropy is generated: deriving against an unchecked list
// would silently produce non-standard, possibly insecure phrases.
func New(words []string) (*List, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidList, len(words))
	}
	l := &List{
		words: make([]string, Size),
		index: make(map[string]int, Size),
	}
	copy(l.words, words)
	for i, w := range l.words {
		if _, dup := l.index[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrInvalidList, w)
		}
		l.index[w] = i
	}
	return l, nil
}

// Load reads a wordlist with one word per line: UTF-8, surrounding
// whitespace trimmed, blank lines skipped. The result passes through
// the same gate as New.
func Load(r io.Reader) (*List, error) {
	scanner := bufio.NewScanner(r)
	words := make([]string, 0, Size)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	return New(words)
}

// English returns the canonical BIP-39 English list, passed through the
// same validation gate as externally supplied lists.
func English() (*List, error) {
	return New(wordlists.English)
}

// Word returns the word at index i. The caller guarantees 0 <= i < Len;
// encoded 11-bit groups cannot fall outside that range.
func (l *List) Word(i int) string {
	return l.words[i]
}

// Index returns the position of word in the list.
func (l *List) Index(word string) (int, bool) {
	i, ok := l.index[word]
	return i, ok
}

// Len returns the number of words, always Size for a constructed List.
func (l *List) Len() int {
	return len(l.words)
}

// Words returns a copy of the list in order.
func (l *List) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

// Fingerprint returns the lowercase hex SHA-256 of the newline-joined
// list. Users compare it against the published hash of the canonical
// list before trusting a generated phrase.
func (l *List) Fingerprint() string {
	sum := sha256.Sum256([]byte(strings.Join(l.words, "\n")))
	return hex.EncodeToString(sum[:])
}

// FileFingerprint is the fingerprint variant with a trailing newline,
// matching `sha256sum` over the upstream wordlist text file.
func (l *List) FileFingerprint() string {
	sum := sha256.Sum256([]byte(strings.Join(l.words, "\n") + "\n"))
	return hex.EncodeToString(sum[:])
}

// Package wordpass encodes and decodes the human-typed identifiers
// used for upload IDs and passphrases: a four-digit numeric prefix
// followed by four words from a fixed 2048-word list, e.g.
// "0005-bafraish-baifeat-baigreang-baikair".
//
// Parse requires an exact, case-sensitive match for every word.
// ParseFuzzy additionally tolerates small typos: a word that fails
// the exact lookup is matched against the word list by edit
// distance, and only accepted if exactly one candidate is within
// distance 1.
package wordpass

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/postalsys/toc/internal/wordlist"
)

const (
	wordCount  = 4
	prefixSpan = 10000
)

// Identifier is a parsed "NNNN-word-word-word-word" token.
type Identifier struct {
	Prefix uint16
	Words  [wordCount]uint16
}

// Generate draws a fresh random Identifier using crypto/rand.
func Generate() (Identifier, error) {
	var id Identifier

	prefix, err := rand.Int(rand.Reader, big.NewInt(prefixSpan))
	if err != nil {
		return id, fmt.Errorf("wordpass: generate prefix: %w", err)
	}
	id.Prefix = uint16(prefix.Int64())

	for i := range id.Words {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(wordlist.Words))))
		if err != nil {
			return id, fmt.Errorf("wordpass: generate word: %w", err)
		}
		id.Words[i] = uint16(n.Int64())
	}
	return id, nil
}

// String renders the identifier in canonical "NNNN-w-w-w-w" form.
func (id Identifier) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04d", id.Prefix)
	for _, w := range id.Words {
		b.WriteByte('-')
		b.WriteString(wordlist.Words[w])
	}
	return b.String()
}

// Bytes returns the identifier's canonical string form as bytes, for
// use as passphrase input to internal/codec without an intermediate
// string conversion at every call site.
func (id Identifier) Bytes() []byte {
	return []byte(id.String())
}

// Parse decodes s, requiring every word to exactly match the word
// list. Use ParseFuzzy to tolerate typos.
func Parse(s string) (Identifier, error) {
	prefix, tokens, err := splitParts(s)
	if err != nil {
		return Identifier{}, err
	}

	var id Identifier
	id.Prefix = prefix
	for i, token := range tokens {
		idx, ok := exactIndex(token)
		if !ok {
			return Identifier{}, fmt.Errorf("wordpass: %w: %q", ErrUnknownWord, token)
		}
		id.Words[i] = uint16(idx)
	}
	return id, nil
}

// ParseFuzzy decodes s like Parse, but falls back to edit-distance
// matching for any word that fails an exact lookup, succeeding only
// when exactly one word list entry is within distance 1.
func ParseFuzzy(s string) (Identifier, error) {
	prefix, tokens, err := splitParts(s)
	if err != nil {
		return Identifier{}, err
	}

	var id Identifier
	id.Prefix = prefix
	for i, token := range tokens {
		idx, err := lookupWordFuzzy(token)
		if err != nil {
			return Identifier{}, err
		}
		id.Words[i] = idx
	}
	return id, nil
}

func splitParts(s string) (uint16, []string, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 1+wordCount {
		return 0, nil, fmt.Errorf("wordpass: %w: expected %d hyphen-separated parts, got %d", ErrInvalidFormat, 1+wordCount, len(parts))
	}
	prefix, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return 0, nil, fmt.Errorf("wordpass: %w: invalid prefix %q", ErrInvalidFormat, parts[0])
	}
	return uint16(prefix), parts[1:], nil
}

// lookupWordFuzzy resolves a single typed word component to a word
// list index, exactly or fuzzily.
func lookupWordFuzzy(token string) (uint16, error) {
	if idx, ok := exactIndex(token); ok {
		return uint16(idx), nil
	}
	if len(token) < 2 || len(token) > 10 {
		return 0, fmt.Errorf("wordpass: %w: %q", ErrUnknownWord, token)
	}

	lower := strings.ToLower(token)
	var candidates []int
	for i, w := range wordlist.Words {
		if levenshtein.ComputeDistance(lower, w) <= 1 {
			candidates = append(candidates, i)
		}
	}
	switch len(candidates) {
	case 0:
		return 0, fmt.Errorf("wordpass: %w: %q", ErrUnknownWord, token)
	case 1:
		return uint16(candidates[0]), nil
	default:
		return 0, fmt.Errorf("wordpass: %w: %q", ErrAmbiguousWord, token)
	}
}

// exactIndex binary-searches the sorted word list for an exact,
// case-sensitive match.
func exactIndex(token string) (int, bool) {
	words := wordlist.Words[:]
	i := sort.Search(len(words), func(i int) bool { return words[i] >= token })
	if i < len(words) && words[i] == token {
		return i, true
	}
	return 0, false
}

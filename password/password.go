// Package password generates human-readable passwords: words the user can
// pronounce, glued together with digits and separator characters.
//
// This is a readability helper, not a security system: math/rand is used on
// purpose, and no entropy guarantees are made. Do not use it where a
// cryptographically random secret is required.
package password

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Separators is the character set passwords are joined with. One distinct
// separator is drawn per word boundary.
const Separators = "!@$%^&*-_+=:|~?/.;"

var ErrTooFewWords = errors.New("password: at least two words required")

// Source supplies candidate words. RandomWords must return n distinct words.
type Source interface {
	RandomWords(ctx context.Context, n int) ([]string, error)
}

// List is a static, in-memory Source. Handy for tests and tools that ship a
// builtin word list instead of a database.
type List []string

func (l List) RandomWords(_ context.Context, n int) ([]string, error) {
	if n > len(l) {
		return nil, fmt.Errorf("password: need %d words, list has %d", n, len(l))
	}
	out := make([]string, 0, n)
	for _, i := range rand.Perm(len(l))[:n] {
		out = append(out, l[i])
	}
	return out, nil
}

// Generate builds a password of the shape
//
//	<number> WORD <sep> word <sep> ... Word <number>
//
// with `words` distinct words from src, words-1 distinct separators and two
// numbers in [1,98]. Each word's casing is randomized independently.
func Generate(ctx context.Context, src Source, words int) (string, error) {
	if words < 2 {
		return "", ErrTooFewWords
	}
	if words-1 > len(Separators) {
		return "", fmt.Errorf("password: %d words need %d distinct separators, only %d available",
			words, words-1, len(Separators))
	}

	numbers := sampleInts(1, 98, 2)
	seps := sampleChars(Separators, words-1)
	selected, err := src.RandomWords(ctx, words)
	if err != nil {
		return "", err
	}
	if len(selected) < words {
		return "", fmt.Errorf("password: source returned %d words, need %d", len(selected), words)
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(numbers[0]))
	for i := 0; i < words-1; i++ {
		b.WriteString(transformWord(selected[i]))
		b.WriteByte(seps[i])
	}
	b.WriteString(transformWord(selected[words-1]))
	b.WriteString(strconv.Itoa(numbers[1]))
	return b.String(), nil
}

// transformWord randomly capitalizes, lowercases or uppercases a word.
func transformWord(word string) string {
	switch rand.Intn(3) {
	case 0:
		if word == "" {
			return word
		}
		return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	case 1:
		return strings.ToLower(word)
	default:
		return strings.ToUpper(word)
	}
}

// sampleInts draws n distinct ints from [lo, hi].
func sampleInts(lo, hi, n int) []int {
	out := make([]int, 0, n)
	for _, i := range rand.Perm(hi - lo + 1)[:n] {
		out = append(out, lo+i)
	}
	return out
}

// sampleChars draws n distinct bytes from set.
func sampleChars(set string, n int) []byte {
	out := make([]byte, 0, n)
	for _, i := range rand.Perm(len(set))[:n] {
		out = append(out, set[i])
	}
	return out
}

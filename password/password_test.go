package password

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode"
)

var testWords = List{
	"apple", "brook", "cedar", "dune", "elm", "fern", "grove", "heath",
	"iris", "jade", "kelp", "lark", "moss", "nook", "oak", "pine",
}

func TestGenerateShape(t *testing.T) {
	ctx := context.Background()
	for _, words := range []int{2, 3, 5} {
		pw, err := Generate(ctx, testWords, words)
		if err != nil {
			t.Fatalf("Generate(%d): %v", words, err)
		}
		if !unicode.IsDigit(rune(pw[0])) {
			t.Fatalf("password should start with a digit: %q", pw)
		}
		if !unicode.IsDigit(rune(pw[len(pw)-1])) {
			t.Fatalf("password should end with a digit: %q", pw)
		}
		seps := 0
		for _, r := range pw {
			if strings.ContainsRune(Separators, r) {
				seps++
			}
		}
		if seps != words-1 {
			t.Fatalf("expected %d separators in %q, got %d", words-1, pw, seps)
		}
	}
}

func TestGenerateUsesDistinctWords(t *testing.T) {
	ctx := context.Background()
	pw, err := Generate(ctx, testWords, 4)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lower := strings.ToLower(pw)
	used := 0
	for _, w := range testWords {
		if strings.Contains(lower, w) {
			used++
		}
	}
	if used < 4 {
		t.Fatalf("expected 4 list words in %q, found %d", pw, used)
	}
}

func TestGenerateRejectsTooFewWords(t *testing.T) {
	for _, words := range []int{-1, 0, 1} {
		if _, err := Generate(context.Background(), testWords, words); !errors.Is(err, ErrTooFewWords) {
			t.Fatalf("Generate(%d): expected ErrTooFewWords, got %v", words, err)
		}
	}
}

func TestGenerateRejectsMoreWordsThanSeparators(t *testing.T) {
	big := make(List, len(Separators)+5)
	for i := range big {
		big[i] = strings.Repeat("x", i+1)
	}
	if _, err := Generate(context.Background(), big, len(Separators)+2); err == nil {
		t.Fatalf("expected error when separators run out")
	}
}

func TestGeneratePropagatesSourceError(t *testing.T) {
	src := errSource{err: errors.New("db down")}
	if _, err := Generate(context.Background(), src, 3); !errors.Is(err, src.err) {
		t.Fatalf("expected source error, got %v", err)
	}
}

type errSource struct{ err error }

func (s errSource) RandomWords(context.Context, int) ([]string, error) { return nil, s.err }

func TestListSamplesDistinct(t *testing.T) {
	got, err := testWords.RandomWords(context.Background(), len(testWords))
	if err != nil {
		t.Fatalf("RandomWords: %v", err)
	}
	seen := map[string]bool{}
	for _, w := range got {
		if seen[w] {
			t.Fatalf("duplicate word %q", w)
		}
		seen[w] = true
	}
	if _, err := testWords.RandomWords(context.Background(), len(testWords)+1); err == nil {
		t.Fatalf("expected error when asking for more words than the list has")
	}
}

func TestTransformWordCases(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := transformWord("river")
		switch got {
		case "River", "river", "RIVER":
		default:
			t.Fatalf("unexpected transform %q", got)
		}
	}
}

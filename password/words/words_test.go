package words

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

var seedList = []string{
	"apple", "brook", "cedar", "dune", "elm", "fern", "grove", "heath",
	"iris", "jade",
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Seed(context.Background(), seedList))
	return s
}

func TestSeedAndCount(t *testing.T) {
	s := newTestStore(t)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, len(seedList), n)

	// Seeding again is a no-op for existing words.
	require.NoError(t, s.Seed(context.Background(), seedList[:3]))
	n, err = s.Count(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, len(seedList), n)
}

func TestRandomWordsDistinct(t *testing.T) {
	s := newTestStore(t)

	got, err := s.RandomWords(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 5)

	seen := map[string]bool{}
	for _, w := range got {
		require.Contains(t, seedList, w)
		require.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true
	}
}

func TestRandomWordsAll(t *testing.T) {
	s := newTestStore(t)

	got, err := s.RandomWords(context.Background(), len(seedList))
	require.NoError(t, err)
	require.ElementsMatch(t, seedList, got)
}

func TestRandomWordsTooMany(t *testing.T) {
	s := newTestStore(t)

	_, err := s.RandomWords(context.Background(), len(seedList)+1)
	require.Error(t, err)
}

func TestRandomWordsToleratesIDGaps(t *testing.T) {
	s := newTestStore(t)

	// Punch holes in the id space; RandomWords must re-draw around them.
	require.NoError(t, s.db.Delete(&Word{}, "id IN ?", []int{2, 5, 7}).Error)

	for i := 0; i < 10; i++ {
		got, err := s.RandomWords(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, got, 5)
	}
}

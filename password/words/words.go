// Package words is a sqlite-backed word source for the password generator.
// Pure-Go driver (glebarez/sqlite), so no CGO is required.
package words

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Word is one dictionary row. IDs are expected to be dense but gaps (from
// deletions) are tolerated by RandomWords.
type Word struct {
	ID   uint   `gorm:"primaryKey"`
	Word string `gorm:"uniqueIndex;not null"`
}

type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) a sqlite word database at path.
// Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("words: open %q: %w", path, err)
	}
	return New(db)
}

// New wraps an existing gorm DB and migrates the schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Word{}); err != nil {
		return nil, fmt.Errorf("words: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Seed inserts words, skipping ones already present.
func (s *Store) Seed(ctx context.Context, list []string) error {
	for _, w := range list {
		res := s.db.WithContext(ctx).
			Where(Word{Word: w}).
			FirstOrCreate(&Word{Word: w})
		if res.Error != nil {
			return fmt.Errorf("words: seed %q: %w", w, res.Error)
		}
	}
	return nil
}

// Count reports how many words are stored.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Word{}).Count(&n).Error
	return n, err
}

// RandomWords returns n distinct words drawn by random id. An initial batch
// of ids is sampled and fetched in one query; ids that hit gaps are replaced
// by single re-draws until the result is full or the id space is exhausted.
func (s *Store) RandomWords(ctx context.Context, n int) ([]string, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return nil, err
	}
	if int64(n) > count {
		return nil, fmt.Errorf("words: need %d words, store has %d", n, count)
	}

	maxID := int(count)
	var highest Word
	if err := s.db.WithContext(ctx).Order("id DESC").First(&highest).Error; err == nil {
		if int(highest.ID) > maxID {
			maxID = int(highest.ID)
		}
	}

	drawn := make(map[int]bool, n)
	ids := make([]int, 0, n)
	for _, i := range rand.Perm(maxID)[:min(n, maxID)] {
		drawn[i+1] = true
		ids = append(ids, i+1)
	}

	var selected []string
	if err := s.db.WithContext(ctx).Model(&Word{}).
		Where("id IN ?", ids).
		Pluck("word", &selected).Error; err != nil {
		return nil, err
	}

	// re-draw one id at a time for every gap we hit
	for len(selected) < n {
		if len(drawn) >= maxID {
			return nil, fmt.Errorf("words: id space exhausted at %d of %d words", len(selected), n)
		}
		id := rand.Intn(maxID) + 1
		if drawn[id] {
			continue
		}
		drawn[id] = true

		var w Word
		err := s.db.WithContext(ctx).First(&w, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		selected = append(selected, w.Word)
	}
	return selected, nil
}

// Package memory provides an in-process store.Store backed by a map.
//
// It exists for tests and small tools: the facade takes its store by
// injection, and this is the zero-dependency double to inject. An optional
// cleanup loop prunes expired entries; expired entries are also dropped
// lazily on read.
package memory

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	val []byte
	exp time.Time // zero => no TTL
}

type Store struct {
	mu     sync.RWMutex
	m      map[string]entry
	ticker *time.Ticker
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// New creates a memory store. If cleanupInterval > 0, a background loop
// prunes expired entries at that cadence; otherwise pruning is read-driven.
func New(cleanupInterval time.Duration) *Store {
	s := &Store{m: make(map[string]entry)}
	if cleanupInterval > 0 {
		s.ticker = time.NewTicker(cleanupInterval)
		s.stopCh = make(chan struct{})
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for {
				select {
				case <-s.ticker.C:
					s.prune()
				case <-s.stopCh:
					return
				}
			}
		}()
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		s.mu.Lock()
		// recheck under write lock; a newer Set may have replaced it
		if cur, ok := s.m[key]; ok && !cur.exp.IsZero() && time.Now().After(cur.exp) {
			delete(s.m, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}
	return e.val, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	s.m[key] = entry{val: value, exp: exp}
	s.mu.Unlock()
	return nil
}

func (s *Store) Add(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.m[key]; ok && (e.exp.IsZero() || time.Now().Before(e.exp)) {
		return false, nil
	}
	s.m[key] = entry{val: value, exp: exp}
	return true, nil
}

func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *Store) Close(_ context.Context) error {
	s.once.Do(func() {
		if s.stopCh != nil {
			close(s.stopCh)
			if s.ticker != nil {
				s.ticker.Stop()
			}
			s.wg.Wait()
		}
	})
	return nil
}

// Len reports live (non-expired) entries. Test helper.
func (s *Store) Len() int {
	now := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.m {
		if e.exp.IsZero() || now.Before(e.exp) {
			n++
		}
	}
	return n
}

func (s *Store) prune() {
	now := time.Now()
	s.mu.Lock()
	for k, e := range s.m {
		if !e.exp.IsZero() && e.exp.Before(now) {
			delete(s.m, k)
		}
	}
	s.mu.Unlock()
}

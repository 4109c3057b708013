package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps the leaderboard in process memory. It backs the "memory"
// provider for local development and the package tests; nothing survives a
// restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*Entry
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*Entry)}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) RecordPlay(ctx context.Context, id, title, thumbnail string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		e.Plays++
		e.Title = title
		e.Thumbnail = thumbnail
		return nil
	}
	s.entries[id] = &Entry{ID: id, Title: title, Thumbnail: thumbnail, Plays: 1}
	return nil
}

func (s *MemoryStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, *e)
	}
	// Ties keep map order, which is deliberately unspecified.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Plays > entries[j].Plays })
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

package leaderboard

import (
	"context"
	"fmt"
	"log"
	"time"
)

// storeTimeout bounds every provider call. The stores are remote services;
// without a deadline a hung connection would pin the request forever.
const storeTimeout = 8 * time.Second

// maxWriteAttempts caps the write path at the primary plus one fallback.
const maxWriteAttempts = 2

// Service is the provider-agnostic leaderboard: it validates input, picks the
// backing store and handles the single write-path fallback. Construct it once
// at startup and share it across requests; it holds no mutable state of its
// own, so it is safe for concurrent use.
type Service struct {
	stores  []Store
	timeout time.Duration
	notify  func(Entry)
}

// Option configures a Service.
type Option func(*Service)

// WithNotify registers a best-effort callback invoked after every
// successfully recorded play. It must not block; its outcome never affects
// the result of RecordPlay.
func WithNotify(fn func(Entry)) Option {
	return func(s *Service) { s.notify = fn }
}

// WithTimeout overrides the per-store-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// NewService builds a Service over an ordered provider list: stores[0] is the
// configured primary, stores[1] (if present) the write-path fallback. An
// empty list is allowed and makes every call fail with ErrStoreUnavailable.
func NewService(stores []Store, opts ...Option) *Service {
	s := &Service{stores: stores, timeout: storeTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordPlay records one play of the given game. The primary provider is
// tried first; if it fails for any reason the fallback provider gets exactly
// one attempt. A play is never silently dropped: if no provider accepts the
// write, the last provider error is returned.
func (s *Service) RecordPlay(ctx context.Context, id, title, thumbnail string) error {
	if id == "" || title == "" {
		return fmt.Errorf("%w: id and title are required", ErrInvalidArgument)
	}
	if len(s.stores) == 0 {
		return fmt.Errorf("%w: no leaderboard provider configured", ErrStoreUnavailable)
	}

	var lastErr error
	for i, store := range s.stores {
		if i >= maxWriteAttempts {
			break
		}
		err := s.recordOnce(ctx, store, id, title, thumbnail)
		if err == nil {
			if i > 0 {
				log.Printf("leaderboard: play for %q recorded via fallback provider %s", id, store.Name())
			}
			if s.notify != nil {
				s.notify(Entry{ID: id, Title: title, Thumbnail: thumbnail})
			}
			return nil
		}
		log.Printf("leaderboard: provider %s failed to record play for %q: %v", store.Name(), id, err)
		lastErr = err
	}
	return lastErr
}

func (s *Service) recordOnce(ctx context.Context, store Store, id, title, thumbnail string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return store.RecordPlay(ctx, id, title, thumbnail)
}

// TopN returns up to n entries ordered by plays descending, read from the
// primary provider only. The stores are not kept in sync, so reads never fall
// back: a board served from the alternate provider would not be the board
// plays were recorded to.
func (s *Service) TopN(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive", ErrInvalidArgument)
	}
	if len(s.stores) == 0 {
		return nil, fmt.Errorf("%w: no leaderboard provider configured", ErrStoreUnavailable)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.stores[0].TopN(ctx, n)
}

// Primary reports the name of the provider reads are served from, or "" when
// no provider is configured.
func (s *Service) Primary() string {
	if len(s.stores) == 0 {
		return ""
	}
	return s.stores[0].Name()
}

// Close releases every store that holds external connections.
func (s *Service) Close() error {
	var firstErr error
	for _, store := range s.stores {
		if c, ok := store.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

package leaderboard

import (
	"context"
	"errors"
)

// Entry is a single leaderboard row: one per game id, created on the first
// recorded play. Title and Thumbnail are refreshed on every play so the board
// tracks whatever the catalog currently calls the game.
type Entry struct {
	ID        string `json:"id" firestore:"-"`
	Title     string `json:"title" firestore:"title"`
	Thumbnail string `json:"thumbnail,omitempty" firestore:"thumbnail"`
	Plays     int64  `json:"plays" firestore:"plays"`
}

// Store is a single leaderboard backend. Implementations must make RecordPlay
// atomic with respect to concurrent callers for the same id: two simultaneous
// plays of one game must both be counted.
type Store interface {
	// Name identifies the provider ("supabase", "firestore", "memory").
	Name() string
	// RecordPlay upserts the entry for id: plays = 1 on first sight,
	// plays += 1 afterwards, title/thumbnail overwritten either way.
	RecordPlay(ctx context.Context, id, title, thumbnail string) error
	// TopN returns up to n entries ordered by plays descending. Ties are
	// returned in store-native order, which is not deterministic.
	TopN(ctx context.Context, n int) ([]Entry, error)
}

var (
	// ErrInvalidArgument marks caller mistakes (missing id/title, n <= 0).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable marks missing configuration or network/auth
	// failures against a provider.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrUpstreamRejected marks data-level errors returned by a reachable
	// store, e.g. a constraint violation.
	ErrUpstreamRejected = errors.New("store rejected request")
)

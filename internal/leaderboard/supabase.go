package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// entryRow is the gorm mapping for the leaderboard table.
type entryRow struct {
	ID        string `gorm:"primaryKey;size:128"`
	Title     string `gorm:"size:255;not null"`
	Thumbnail string `gorm:"size:512"`
	Plays     int64  `gorm:"not null;default:0"`
}

func (entryRow) TableName() string { return "leaderboard" }

// SupabaseStore persists the leaderboard in Postgres (Supabase is hosted
// Postgres, reached over a plain DSN). The upsert leans on ON CONFLICT with a
// server-side `plays + 1` expression, so concurrent plays of the same game
// serialize inside the database.
type SupabaseStore struct {
	db *gorm.DB
}

// NewSupabaseStore connects to the database and runs migrations.
func NewSupabaseStore(dsn string) (*SupabaseStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("supabase: %w: SUPABASE_DB_URL is not set", ErrStoreUnavailable)
	}

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("supabase: %w: %v", ErrStoreUnavailable, err)
	}

	if err := db.AutoMigrate(&entryRow{}); err != nil {
		return nil, fmt.Errorf("supabase: %w: migrate: %v", ErrStoreUnavailable, err)
	}

	return &SupabaseStore{db: db}, nil
}

func (s *SupabaseStore) Name() string { return "supabase" }

// RecordPlay upserts the row for id. Insert seeds plays at 1; on conflict the
// existing counter is bumped in place and title/thumbnail refreshed.
func (s *SupabaseStore) RecordPlay(ctx context.Context, id, title, thumbnail string) error {
	row := entryRow{ID: id, Title: title, Thumbnail: thumbnail, Plays: 1}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"title":     title,
			"thumbnail": thumbnail,
			"plays":     gorm.Expr("leaderboard.plays + 1"),
		}),
	}).Create(&row).Error
	if err != nil {
		return s.wrap(err)
	}
	return nil
}

// TopN reads the board ordered by plays descending. Tied counts come back in
// whatever order Postgres returns them.
func (s *SupabaseStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	var rows []entryRow
	if err := s.db.WithContext(ctx).Order("plays DESC").Limit(n).Find(&rows).Error; err != nil {
		return nil, s.wrap(err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{ID: r.ID, Title: r.Title, Thumbnail: r.Thumbnail, Plays: r.Plays})
	}
	return entries, nil
}

// Close releases the underlying connection pool.
func (s *SupabaseStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// wrap classifies a gorm/pgx error into the service taxonomy. A PgError means
// the server was reached and rejected the statement; anything else is treated
// as the store being unavailable.
func (s *SupabaseStore) wrap(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("supabase: %w: %s", ErrUpstreamRejected, pgErr.Message)
	}
	return fmt.Errorf("supabase: %w: %v", ErrStoreUnavailable, err)
}

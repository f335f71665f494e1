// Package store is the authoritative datastore for categories, dishes,
// orders, settings and staff users. It stands in for a remote API: state
// lives in an in-process memory-mode SQLite database and every operation
// waits an artificial latency before answering, so consumers behave exactly
// as they would against a real backend.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/riquelima/gourmetgo/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidOrder     = errors.New("order is missing required fields")
	ErrStatusNotAllowed = errors.New("status transition not allowed")
	ErrCategoryInUse    = errors.New("category still referenced by dishes")
)

type Store struct {
	db      *gorm.DB
	latency time.Duration
	policy  models.StatusPolicy
	now     func() time.Time
	newID   func() string
}

type Option func(*Store)

// WithLatency sets the artificial delay applied to every operation.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithPolicy swaps the status transition policy.
func WithPolicy(p models.StatusPolicy) Option {
	return func(s *Store) { s.policy = p }
}

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the identity generator, for deterministic tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func Open(dsn string, opts ...Option) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Dish{},
		&models.Order{},
		&models.AppSettings{},
	); err != nil {
		return nil, err
	}

	s := &Store{
		db:     db,
		policy: models.AllowAnyStatus{},
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// wait blocks for the configured latency or until ctx is done.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// ErrStoreUnavailable is returned when no usable store handle can be obtained.
var ErrStoreUnavailable = errors.New("store unavailable")

var errNoTransaction = errors.New("no transaction in progress")

// Store hands out handles to a lazily opened connection pool.
//
// It is safe for concurrent use. At most one Handle is outstanding at a time:
// Acquire blocks until the previous handle is released or ctx is done, so
// operations sharing a Store run one after another.
type Store struct {
	cfg     Config
	connect func(Config) (*gorm.DB, error)

	mu   sync.Mutex // guards db and slot
	db   *gorm.DB
	slot chan struct{}
}

// NewStore creates a store that connects on the first Acquire.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg, connect: Connect}
}

// NewStoreFromDB wraps an already opened connection pool.
func NewStoreFromDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Acquire returns a handle scoped to one operation. The caller must Release it.
func (s *Store) Acquire(ctx context.Context) (*Handle, error) {
	slot := s.useSlot()
	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, ctx.Err())
	}
	free := func() { <-slot }

	db, err := s.open()
	if err != nil {
		free()
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		free()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		free()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return &Handle{db: db.WithContext(ctx), free: free}, nil
}

func (s *Store) useSlot() chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slot == nil {
		s.slot = make(chan struct{}, 1)
	}
	return s.slot
}

// open returns the pool, connecting on first use.
func (s *Store) open() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db, nil
	}
	if s.connect == nil {
		return nil, ErrStoreUnavailable
	}
	db, err := s.connect(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	s.db = db
	return db, nil
}

// Close closes the underlying pool if it was ever opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}

// Handle is a store session with at most one open transaction.
type Handle struct {
	db   *gorm.DB
	tx   *gorm.DB
	free func()
	once sync.Once
}

// DB returns the open transaction, or the session when none is open.
func (h *Handle) DB() *gorm.DB {
	if h.tx != nil {
		return h.tx
	}
	return h.db
}

// Begin opens a transaction spanning every statement until Commit.
func (h *Handle) Begin() error {
	if h.tx != nil {
		return errors.New("transaction already in progress")
	}
	tx := h.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	h.tx = tx
	return nil
}

// Commit makes every write since Begin durable.
func (h *Handle) Commit() error {
	if h.tx == nil {
		return errNoTransaction
	}
	tx := h.tx
	h.tx = nil
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Release rolls back an uncommitted transaction and lets the next Acquire
// proceed. Safe to call more than once.
func (h *Handle) Release() {
	if h.tx != nil {
		h.tx.Rollback()
		h.tx = nil
	}
	h.once.Do(func() {
		if h.free != nil {
			h.free()
		}
	})
}

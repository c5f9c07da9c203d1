// Package storage keeps the canvas state between runs.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"zoomcanvas/internal/board"
	"zoomcanvas/internal/snapshot"
)

var (
	bucketCanvas = []byte("canvas")

	keyNotes        = []byte("notes")
	keyLastWindowID = []byte("last_window_id")
)

var (
	// ErrStateNotFound is returned by LoadState before anything was saved.
	ErrStateNotFound = errors.New("no saved canvas state")
	// ErrLocked is returned by New when another process holds the file.
	ErrLocked = errors.New("canvas is open in another window")
)

// DefaultOpenTimeout bounds the wait for the database file lock.
const DefaultOpenTimeout = time.Second

// Persister is what the UI needs from a store.
type Persister interface {
	SaveState(ctx context.Context, s board.State) error
	LoadState(ctx context.Context) (board.State, error)
}

// Storage is the bbolt backed Persister.
type Storage struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	timeout time.Duration
	logger  *slog.Logger
}

// WithTimeout sets how long New waits for the file lock.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New opens (creating if needed) the database at dbPath.
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	o := options{timeout: DefaultOpenTimeout, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: o.timeout})
	if err != nil {
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, dbPath)
		}
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, logger: o.logger}
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}
	return s, nil
}

// Close closes the database. It is safe to call more than once.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketCanvas); err != nil {
			return fmt.Errorf("failed to create canvas bucket: %w", err)
		}
		return nil
	})
}

// SaveState overwrites the stored state with s. The drag session is not
// stored.
func (s *Storage) SaveState(ctx context.Context, state board.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := snapshot.Marshal(state)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCanvas)
		if bucket == nil {
			return fmt.Errorf("canvas bucket not found")
		}
		if err := bucket.Put(keyNotes, data); err != nil {
			return fmt.Errorf("failed to save canvas state: %w", err)
		}
		return nil
	})
}

// LoadState returns the stored state, or ErrStateNotFound on first run.
func (s *Storage) LoadState(ctx context.Context) (board.State, error) {
	if err := ctx.Err(); err != nil {
		return board.State{}, err
	}

	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCanvas)
		if bucket == nil {
			return fmt.Errorf("canvas bucket not found")
		}
		v := bucket.Get(keyNotes)
		if v == nil {
			return ErrStateNotFound
		}
		// v is only valid inside the transaction
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return board.State{}, err
	}

	state, err := snapshot.Decode(data)
	if err != nil {
		return board.State{}, fmt.Errorf("stored canvas state is corrupt: %w", err)
	}
	return state, nil
}

// ClaimWindow records a fresh window id and returns it together with the
// id of the window that ran before, which is empty on first use.
func (s *Storage) ClaimWindow(ctx context.Context) (id, previous string, err error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	id = uuid.NewString()
	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCanvas)
		if bucket == nil {
			return fmt.Errorf("canvas bucket not found")
		}
		if v := bucket.Get(keyLastWindowID); v != nil {
			previous = string(v)
		}
		return bucket.Put(keyLastWindowID, []byte(id))
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to claim window id: %w", err)
	}

	s.logger.Info("claimed window", "window_id", id, "previous_window_id", previous)
	return id, previous, nil
}

// WindowID returns the last claimed window id.
func (s *Storage) WindowID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var id string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCanvas)
		if bucket == nil {
			return fmt.Errorf("canvas bucket not found")
		}
		id = string(bucket.Get(keyLastWindowID))
		return nil
	})
	return id, err
}

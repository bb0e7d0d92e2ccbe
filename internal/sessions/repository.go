package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/careersim/gitcoach/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	prefix = "session:"

	prefixByID     = prefix + "id:"
	prefixByTicket = prefix + "ticket:"

	maxUpdateAttempts = 5
)

type Repository struct {
	db       *badger.DB
	sessions *badgerfx.Repository[*sessionModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db:       db,
		sessions: badgerfx.NewRepository(prefixByID, func() *sessionModel { return &sessionModel{} }),
	}
}

// Insert stores a new session.
func (r *Repository) Insert(_ context.Context, model *sessionModel) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return r.sessions.Write(txn, model)
	})
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// Get retrieves a session by its ID.
func (r *Repository) Get(_ context.Context, id uuid.UUID) (*sessionModel, error) {
	var model *sessionModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.sessions.Read(txn, id.String())
		if err == nil {
			model = found
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", mapError(err, id))
	}

	return model, nil
}

// List returns every session, newest first. IDs are v7 so key order is
// creation order.
func (r *Repository) List(_ context.Context) ([]*sessionModel, error) {
	var models []*sessionModel

	options := badger.DefaultIteratorOptions
	options.Reverse = true

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.sessions.List(txn, options)
		if err == nil {
			models = found
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return models, nil
}

// Count returns the number of stored sessions.
func (r *Repository) Count(_ context.Context) (int, error) {
	count := 0

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = []byte(prefixByID)

		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return count, nil
}

// Update runs updater inside a read-modify-write transaction. Conflicting
// writers are retried so transitions for one session apply one at a time.
func (r *Repository) Update(_ context.Context, id uuid.UUID, updater func(*sessionModel) error) (*sessionModel, error) {
	var updated *sessionModel

	var err error
	for range maxUpdateAttempts {
		err = r.db.Update(func(txn *badger.Txn) error {
			model, readErr := r.sessions.Read(txn, id.String())
			if readErr != nil {
				return readErr
			}

			if updErr := updater(model); updErr != nil {
				return updErr
			}

			if writeErr := r.sessions.Write(txn, model); writeErr != nil {
				return writeErr
			}

			updated = model
			return nil
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", mapError(err, id))
	}

	return updated, nil
}

// Delete removes a session.
func (r *Repository) Delete(_ context.Context, id uuid.UUID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return r.sessions.Delete(txn, id.String())
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", mapError(err, id))
	}

	return nil
}

func mapError(err error, id uuid.UUID) error {
	if errors.Is(err, badgerfx.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

package badgerfx

import (
	"encoding/json"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type note struct {
	ID    string `json:"id"`
	Owner string `json:"owner"`
}

func (n *note) StorageID() string { return n.ID }

func (n *note) StorageIndexes() []string { return []string{"note:owner:" + n.Owner + ":" + n.ID} }

func (n *note) MarshalStorage() ([]byte, error) { return json.Marshal(n) }

func (n *note) UnmarshalStorage(data []byte) error { return json.Unmarshal(data, n) }

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := New(Config{InMemory: true}, newLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository("note:id:", func() *note { return &note{} })

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		for _, n := range []*note{{ID: "1", Owner: "ada"}, {ID: "2", Owner: "bob"}} {
			if err := repo.Write(txn, n); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		got, err := repo.Read(txn, "1")
		require.NoError(t, err)
		assert.Equal(t, "ada", got.Owner)

		byIndex, err := repo.ReadByIndex(txn, "note:owner:bob:2")
		require.NoError(t, err)
		assert.Equal(t, "2", byIndex.ID)

		all, err := repo.List(txn, badger.DefaultIteratorOptions)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		reversed := badger.DefaultIteratorOptions
		reversed.Reverse = true
		all, err = repo.List(txn, reversed)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "2", all[0].ID)
		return nil
	}))
}

func TestRepositoryRewritesIndexes(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository("note:id:", func() *note { return &note{} })

	require.NoError(t, db.Update(func(txn *badger.Txn) error { return repo.Write(txn, &note{ID: "1", Owner: "ada"}) }))
	require.NoError(t, db.Update(func(txn *badger.Txn) error { return repo.Write(txn, &note{ID: "1", Owner: "bob"}) }))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		_, err := repo.ReadByIndex(txn, "note:owner:ada:1")
		require.ErrorIs(t, err, ErrNotFound)

		got, err := repo.ReadByIndex(txn, "note:owner:bob:1")
		require.NoError(t, err)
		assert.Equal(t, "bob", got.Owner)
		return nil
	}))
}

func TestRepositoryDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository("note:id:", func() *note { return &note{} })

	require.NoError(t, db.Update(func(txn *badger.Txn) error { return repo.Write(txn, &note{ID: "1", Owner: "ada"}) }))
	require.NoError(t, db.Update(func(txn *badger.Txn) error { return repo.Delete(txn, "1") }))

	err := db.Update(func(txn *badger.Txn) error { return repo.Delete(txn, "1") })
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		_, readErr := repo.Read(txn, "1")
		require.ErrorIs(t, readErr, ErrNotFound)
		_, indexErr := repo.ReadByIndex(txn, "note:owner:ada:1")
		require.ErrorIs(t, indexErr, ErrNotFound)
		return nil
	}))
}

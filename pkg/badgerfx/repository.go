package badgerfx

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

type Repository[T Entity] struct {
	prefix  string
	zero    T
	factory EntityFactory[T]
}

func NewRepository[T Entity](prefix string, factory EntityFactory[T]) *Repository[T] {
	var zero T
	return &Repository[T]{
		prefix:  prefix,
		zero:    zero,
		factory: factory,
	}
}

// Key returns the primary key for id.
func (r *Repository[T]) Key(id string) []byte {
	return []byte(r.prefix + id)
}

func (r *Repository[T]) List(txn *badger.Txn, options badger.IteratorOptions) ([]T, error) {
	validPrefix := []byte(r.prefix)
	seekPrefix := []byte(r.prefix)
	if options.Reverse {
		seekPrefix = append(seekPrefix, SeekEnd)
	}
	options.Prefix = validPrefix

	it := txn.NewIterator(options)
	defer it.Close()

	entities := []T{}
	for it.Seek(seekPrefix); it.ValidForPrefix(validPrefix); it.Next() {
		entity, err := r.decode(it.Item())
		if err != nil {
			return nil, err
		}

		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *Repository[T]) Read(txn *badger.Txn, id string) (T, error) {
	return r.get(txn, r.Key(id))
}

func (r *Repository[T]) ReadByIndex(txn *badger.Txn, index string) (T, error) {
	item, err := txn.Get([]byte(index))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return r.zero, fmt.Errorf("%w: index %s", ErrNotFound, index)
	}
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity index: %w", err)
	}

	key, err := item.ValueCopy(nil)
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity key: %w", err)
	}

	return r.get(txn, key)
}

// Write stores entity and refreshes its indexes. Indexes dropped since the
// previous version are removed.
func (r *Repository[T]) Write(txn *badger.Txn, entity T) error {
	data, err := entity.MarshalStorage()
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	if old, readErr := r.Read(txn, entity.StorageID()); readErr == nil {
		if indexErr := r.DeleteIndexes(txn, old); indexErr != nil {
			return indexErr
		}
	} else if !errors.Is(readErr, ErrNotFound) {
		return readErr
	}

	if indexErr := r.CreateIndexes(txn, entity); indexErr != nil {
		return indexErr
	}

	if setErr := txn.Set(r.Key(entity.StorageID()), data); setErr != nil {
		return fmt.Errorf("failed to update entity: %w", setErr)
	}

	return nil
}

func (r *Repository[T]) Delete(txn *badger.Txn, id string) error {
	entity, err := r.Read(txn, id)
	if err != nil {
		return err
	}

	if indexErr := r.DeleteIndexes(txn, entity); indexErr != nil {
		return indexErr
	}

	if delErr := txn.Delete(r.Key(id)); delErr != nil {
		return fmt.Errorf("failed to delete entity: %w", delErr)
	}

	return nil
}

func (r *Repository[T]) CreateIndexes(txn *badger.Txn, entity T) error {
	key := r.Key(entity.StorageID())
	for _, index := range entity.StorageIndexes() {
		if err := txn.Set([]byte(index), key); err != nil {
			return fmt.Errorf("failed to set entity index: %w", err)
		}
	}

	return nil
}

func (r *Repository[T]) DeleteIndexes(txn *badger.Txn, entity T) error {
	for _, index := range entity.StorageIndexes() {
		if err := txn.Delete([]byte(index)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("failed to delete entity index: %w", err)
		}
	}

	return nil
}

func (r *Repository[T]) get(txn *badger.Txn, key []byte) (T, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return r.zero, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return r.zero, fmt.Errorf("failed to get entity: %w", err)
	}

	return r.decode(item)
}

func (r *Repository[T]) decode(item *badger.Item) (T, error) {
	entity := r.factory()
	if err := item.Value(func(val []byte) error {
		return entity.UnmarshalStorage(val)
	}); err != nil {
		return r.zero, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	return entity, nil
}

package badgerfx

import "errors"

var ErrNotFound = errors.New("entity not found")

// Entity is a value the Repository can persist. StorageID is appended to the
// repository prefix to build the primary key; StorageIndexes are full keys
// pointing back to it.
type Entity interface {
	StorageID() string
	StorageIndexes() []string
	MarshalStorage() ([]byte, error)
	UnmarshalStorage(data []byte) error
}

type EntityFactory[T Entity] func() T

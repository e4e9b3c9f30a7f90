package vectorstore

import (
	"errors"

	"slidesearch/internal/domain"
)

// ErrEmptyStore is returned by Search when the store holds no records.
var ErrEmptyStore = errors.New("vector store is empty")

// Storage persists page vectors and supports nearest-neighbour search.
// Records are keyed by (path, page); upserting an existing key overwrites it.
type Storage interface {
	Upsert(records []domain.PageRecord, vectors [][]float64) error
	Search(vector []float64, topK int) ([]domain.SearchResult, error)
	Count() (int, error)
	Clear() error
	Close() error
}

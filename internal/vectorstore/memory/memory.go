package memory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"slidesearch/internal/domain"
	"slidesearch/internal/vectorstore"
)

// Storage is an in-memory vector store using brute-force cosine distance.
// It mirrors the behaviour of the SQLite backend, including keyed overwrite
// on upsert and insertion-order tie-breaking, and backs the unit tests.
type Storage struct {
	mu      sync.RWMutex
	index   map[string]int
	records []domain.PageRecord
	vectors [][]float64
}

func NewStorage() *Storage {
	return &Storage{index: make(map[string]int)}
}

func (s *Storage) Upsert(records []domain.PageRecord, vectors [][]float64) error {
	if len(records) != len(vectors) {
		return errors.New("records and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range records {
		key := fmt.Sprintf("%s:%d", r.Path, r.Page)
		if at, ok := s.index[key]; ok {
			s.records[at] = r
			s.vectors[at] = vectors[i]
			continue
		}
		s.index[key] = len(s.records)
		s.records = append(s.records, r)
		s.vectors = append(s.vectors, vectors[i])
	}
	return nil
}

func (s *Storage) Search(vector []float64, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.records) == 0 {
		return nil, vectorstore.ErrEmptyStore
	}
	results := make([]domain.SearchResult, len(s.records))
	for i := range s.records {
		results[i] = domain.SearchResult{
			Record:   s.records[i],
			Distance: vectorstore.CosineDistance(s.vectors[i], vector),
		}
	}
	// Stable sort keeps insertion order among equal distances.
	sort.SliceStable(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

func (s *Storage) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = make(map[string]int)
	s.records = nil
	s.vectors = nil
	return nil
}

func (s *Storage) Close() error { return nil }

var _ vectorstore.Storage = (*Storage)(nil)

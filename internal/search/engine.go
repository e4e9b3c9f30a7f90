package search

import (
	"fmt"

	"slidesearch/internal/domain"
	"slidesearch/internal/vectorstore"
)

// Engine embeds query text and retrieves nearest stored pages.
type Engine struct {
	embedder domain.Embedder
	store    vectorstore.Storage
}

func NewEngine(embedder domain.Embedder, store vectorstore.Storage) *Engine {
	return &Engine{embedder: embedder, store: store}
}

// Search returns up to k results ordered by ascending distance. k must be
// positive; if k exceeds the number of stored records, all records are
// returned. An empty store surfaces vectorstore.ErrEmptyStore.
func (e *Engine) Search(query string, k int) ([]domain.SearchResult, error) {
	if k <= 0 {
		return nil, fmt.Errorf("result count must be positive, got %d", k)
	}
	vec, err := e.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return e.store.Search(vec, k)
}

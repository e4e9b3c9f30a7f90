package memory

import (
	"errors"
	"testing"

	"slidesearch/internal/domain"
	"slidesearch/internal/vectorstore"
)

func TestSearch_Ordering(t *testing.T) {
	s := NewStorage()
	records := []domain.PageRecord{
		{Path: "a.pdf", Page: 0, Text: "A"},
		{Path: "a.pdf", Page: 1, Text: "B"},
	}
	vectors := [][]float64{{1, 0}, {0, 1}}
	if err := s.Upsert(records, vectors); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	res, err := s.Search([]float64{0.9, 0.1}, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("got %d results, want 2", len(res))
	}
	if res[0].Record.Page != 0 {
		t.Errorf("top result page = %d, want 0", res[0].Record.Page)
	}
	if res[0].Distance >= res[1].Distance {
		t.Errorf("results not in ascending distance order: %f >= %f", res[0].Distance, res[1].Distance)
	}
}

func TestUpsert_OverwritesByKey(t *testing.T) {
	s := NewStorage()
	rec := []domain.PageRecord{{Path: "a.pdf", Page: 0, Text: "old"}}
	if err := s.Upsert(rec, [][]float64{{1, 0}}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	rec[0].Text = "new"
	if err := s.Upsert(rec, [][]float64{{0, 1}}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count = %d after keyed re-upsert, want 1", n)
	}
	res, err := s.Search([]float64{0, 1}, 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res[0].Record.Text != "new" {
		t.Errorf("record text = %q, want overwritten value", res[0].Record.Text)
	}
}

func TestSearch_TopKExceedsCount(t *testing.T) {
	s := NewStorage()
	_ = s.Upsert(
		[]domain.PageRecord{{Path: "a.pdf", Page: 0}, {Path: "a.pdf", Page: 1}},
		[][]float64{{1, 0}, {0, 1}},
	)
	res, err := s.Search([]float64{1, 0}, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("got %d results when topK > count, want 2", len(res))
	}
}

func TestSearch_Empty(t *testing.T) {
	s := NewStorage()
	if _, err := s.Search([]float64{1, 0}, 1); !errors.Is(err, vectorstore.ErrEmptyStore) {
		t.Fatalf("err = %v, want ErrEmptyStore", err)
	}
}

func TestSearch_InvalidTopK(t *testing.T) {
	s := NewStorage()
	if _, err := s.Search([]float64{1, 0}, 0); err == nil {
		t.Fatal("expected error for topK = 0")
	}
}

func TestSearch_TieBreakInsertionOrder(t *testing.T) {
	s := NewStorage()
	// Two records equidistant from the query.
	_ = s.Upsert(
		[]domain.PageRecord{{Path: "b.pdf", Page: 3}, {Path: "a.pdf", Page: 0}},
		[][]float64{{0, 1}, {0, 1}},
	)
	res, err := s.Search([]float64{1, 0}, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res[0].Record.Path != "b.pdf" || res[1].Record.Path != "a.pdf" {
		t.Errorf("tie not broken by insertion order: got %s then %s", res[0].Record.Path, res[1].Record.Path)
	}
}

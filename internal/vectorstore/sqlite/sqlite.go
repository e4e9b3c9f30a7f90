package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"slidesearch/internal/domain"
	"slidesearch/internal/vectorstore"
)

// DBFile is the name of the SQLite database inside the index directory.
const DBFile = "slides.sqlite3"

const pagesSchema = `
CREATE TABLE IF NOT EXISTS pages (
    path TEXT NOT NULL,
    page INTEGER NOT NULL,
    text TEXT,
    embedding BLOB,
    PRIMARY KEY (path, page)
);
`

// Storage is a durable vector store backed by a SQLite file. Similarity
// search is brute-force cosine distance over all stored embeddings, which is
// adequate for the page counts of a slide-deck corpus.
type Storage struct {
	db *sql.DB
}

// Open creates dir if needed and opens (or creates) the database inside it.
func Open(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory %s: %w", dir, err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}
	if _, err := db.Exec(pagesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Storage{db: db}, nil
}

// Upsert writes records keyed by (path, page) inside a single transaction.
// Existing keys are overwritten, so re-indexing never duplicates entries.
func (s *Storage) Upsert(records []domain.PageRecord, vectors [][]float64) error {
	if len(records) != len(vectors) {
		return fmt.Errorf("records and vectors length mismatch: %d vs %d", len(records), len(vectors))
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO pages(path, page, text, embedding) VALUES(?, ?, ?, ?)
		ON CONFLICT(path, page) DO UPDATE SET text = excluded.text, embedding = excluded.embedding`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		blob := encodeEmbedding(vectors[i])
		if _, err := stmt.Exec(r.Path, r.Page, r.Text, blob); err != nil {
			return fmt.Errorf("upsert %s page %d: %w", r.Path, r.Page, err)
		}
	}
	return tx.Commit()
}

// Search returns up to topK records ordered by ascending cosine distance to
// vector. Ties are broken by insertion order (rowid).
func (s *Storage) Search(vector []float64, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}
	rows, err := s.db.Query(`SELECT path, page, text, embedding FROM pages ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query vector store: %w", err)
	}
	defer rows.Close()

	var results []domain.SearchResult
	for rows.Next() {
		var r domain.PageRecord
		var blob []byte
		if err := rows.Scan(&r.Path, &r.Page, &r.Text, &blob); err != nil {
			return nil, err
		}
		emb, err := decodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("record %s page %d: %w", r.Path, r.Page, err)
		}
		results = append(results, domain.SearchResult{
			Record:   r,
			Distance: vectorstore.CosineDistance(emb, vector),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, vectorstore.ErrEmptyStore
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if topK > len(results) {
		topK = len(results)
	}
	return results[:topK], nil
}

func (s *Storage) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM pages`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Storage) Clear() error {
	_, err := s.db.Exec(`DELETE FROM pages`)
	return err
}

func (s *Storage) Close() error { return s.db.Close() }

var _ vectorstore.Storage = (*Storage)(nil)

package index

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"slidesearch/internal/config"
	"slidesearch/internal/domain"
	"slidesearch/internal/vectorstore"
)

// Failure records one PDF or page that could not be indexed.
// Page is -1 when the whole file failed.
type Failure struct {
	Path string
	Page int
	Err  error
}

// Report summarises an index build.
type Report struct {
	Files   int
	Pages   int
	Skipped []Failure
}

// Builder populates the vector store from the configured PDFs.
type Builder struct {
	extractor domain.Extractor
	embedder  domain.Embedder
	store     vectorstore.Storage
}

func NewBuilder(extractor domain.Extractor, embedder domain.Embedder, store vectorstore.Storage) *Builder {
	return &Builder{extractor: extractor, embedder: embedder, store: store}
}

// Build extracts every configured PDF page, embeds it and upserts it into the
// store keyed by (path, page). Extraction failures on individual files or
// pages are logged and recorded in the report; the build continues. The store
// is cleared first so the index always reflects exactly the current corpus.
func (b *Builder) Build(cfg *config.Config) (*Report, error) {
	paths := FindPDFFiles(cfg.PDFPaths)
	if len(paths) == 0 {
		return nil, errors.New("no PDF files matched pdf_paths")
	}
	report := &Report{Files: len(paths)}

	var records []domain.PageRecord
	var corpus []string
	for _, p := range paths {
		pages, failed, err := b.extractor.ExtractPages(p)
		if err != nil {
			log.Printf("warning: skipping %s: %v", p, err)
			report.Skipped = append(report.Skipped, Failure{Path: p, Page: -1, Err: err})
			continue
		}
		for _, idx := range failed {
			log.Printf("warning: skipping page %d of %s", idx, p)
			report.Skipped = append(report.Skipped, Failure{Path: p, Page: idx})
		}
		for _, pg := range pages {
			records = append(records, domain.PageRecord{Path: p, Page: pg.Index, Text: pg.Text})
			corpus = append(corpus, pg.Text)
		}
	}
	if len(records) == 0 {
		return nil, errors.New("no pages extracted from any configured PDF")
	}

	if err := b.embedder.Prepare(corpus); err != nil {
		return nil, fmt.Errorf("prepare embedder: %w", err)
	}
	vectors := make([][]float64, len(records))
	for i, r := range records {
		vec, err := b.embedder.Embed(r.Text)
		if err != nil {
			return nil, fmt.Errorf("embed %s page %d: %w", r.Path, r.Page, err)
		}
		vectors[i] = vec
	}

	if err := b.store.Clear(); err != nil {
		return nil, fmt.Errorf("clear store: %w", err)
	}
	if err := b.store.Upsert(records, vectors); err != nil {
		return nil, fmt.Errorf("upsert records: %w", err)
	}
	if pe, ok := b.embedder.(domain.PersistentEmbedder); ok {
		if err := pe.Save(cfg.ChromaDir); err != nil {
			return nil, fmt.Errorf("save embedder state: %w", err)
		}
	}
	report.Pages = len(records)
	return report, nil
}

// FindPDFFiles expands the configured glob patterns and de-duplicates the
// matches while preserving order. Patterns with no matches are logged and
// skipped.
func FindPDFFiles(patterns []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			log.Printf("warning: invalid pdf_paths pattern %q: %v", pattern, err)
			continue
		}
		if len(matches) == 0 {
			log.Printf("warning: no PDF files found matching pattern: %s", pattern)
			continue
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

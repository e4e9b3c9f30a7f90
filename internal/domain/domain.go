package domain

// PageRecord represents one page of one PDF stored in the index.
// Records are keyed by (Path, Page); re-indexing overwrites, never duplicates.
type PageRecord struct {
	Path string
	Page int
	Text string
}

// PageText is a single extracted page before it is turned into a record.
type PageText struct {
	Index int
	Text  string
}

// SearchResult is a matching page with its distance to the query vector.
// Lower distance means more similar.
type SearchResult struct {
	Record   PageRecord
	Distance float64
}

// Extractor reads per-page text from a PDF file. Pages that fail to render
// are reported by zero-based index in failed rather than aborting the file.
type Extractor interface {
	ExtractPages(path string) (pages []PageText, failed []int, err error)
}

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// PersistentEmbedder is an Embedder whose prepared state must survive across
// processes. Save and Load operate on the index storage directory; the
// embedder chooses its own file layout inside it.
type PersistentEmbedder interface {
	Embedder
	Save(dir string) error
	Load(dir string) error
}

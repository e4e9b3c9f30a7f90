package tui

import (
	"fmt"
	"io"
	"strings"

	"slidesearch/internal/domain"
)

const snippetLimit = 300

// FormatResult renders one search result for batch output. Verbose mode
// appends a truncated snippet of the page text.
func FormatResult(r domain.SearchResult, verbose bool) string {
	head := fmt.Sprintf("[Slide %d - %s] (distance=%.4f)", r.Record.Page, r.Record.Path, r.Distance)
	if !verbose {
		return head
	}
	return head + "\n" + Snippet(r.Record.Text, snippetLimit) + "\n---"
}

// Snippet truncates text to at most limit runes, appending an ellipsis when
// anything was cut.
func Snippet(text string, limit int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// PrintResults writes the ranked results to w in batch mode.
func PrintResults(w io.Writer, results []domain.SearchResult, verbose bool) {
	fmt.Fprintf(w, "=== Top Relevant Results ===\n\n")
	for _, r := range results {
		fmt.Fprintln(w, FormatResult(r, verbose))
	}
	fmt.Fprintf(w, "\nFound %d relevant results.\n", len(results))
}

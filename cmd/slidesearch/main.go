package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"slidesearch/internal/config"
	"slidesearch/internal/domain"
	"slidesearch/internal/embedding/openai"
	"slidesearch/internal/embedding/tfidf"
	"slidesearch/internal/search"
	"slidesearch/internal/tui"
	"slidesearch/internal/vectorstore/sqlite"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "Path to config YAML")
	k := flag.Int("k", 0, "Number of results to return (default from config)")
	verbose := flag.Bool("v", false, "Verbose output (batch mode only)")
	interactive := flag.Bool("i", false, "Interactive slide viewer")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	query := cfg.DefaultQuery
	if args := flag.Args(); len(args) > 0 {
		query = strings.Join(args, " ")
	}
	topK := cfg.DefaultKResults
	if *k != 0 {
		topK = *k
	}

	if _, err := os.Stat(filepath.Join(cfg.ChromaDir, sqlite.DBFile)); err != nil {
		log.Fatalf("index not found at %s; run slidesearch-index first", cfg.ChromaDir)
	}

	emb, err := newEmbedder(cfg)
	if err != nil {
		log.Fatalf("failed to set up embedder: %v", err)
	}
	if pe, ok := emb.(domain.PersistentEmbedder); ok {
		if err := pe.Load(cfg.ChromaDir); err != nil {
			log.Fatalf("failed to load embedder state; run slidesearch-index first: %v", err)
		}
	}

	store, err := sqlite.Open(cfg.ChromaDir)
	if err != nil {
		log.Fatalf("failed to open vector store: %v", err)
	}
	defer store.Close()

	engine := search.NewEngine(emb, store)
	results, err := engine.Search(query, topK)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	if *interactive {
		m := tui.New(results, query, tui.SystemOpener{})
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}
	tui.PrintResults(os.Stdout, results, *verbose)
}

func newEmbedder(cfg *config.Config) (domain.Embedder, error) {
	switch cfg.Embedder.Type {
	case "tfidf", "":
		return tfidf.NewEmbedder(), nil
	case "openai":
		if cfg.Embedder.OpenAI == nil {
			return nil, errors.New("openai embedder config missing")
		}
		return openai.NewClient(openai.Config{
			BaseURL:   cfg.Embedder.OpenAI.BaseURL,
			APIKeyEnv: cfg.Embedder.OpenAI.APIKeyEnv,
			Model:     cfg.Embedder.OpenAI.Model,
			Timeout:   time.Duration(cfg.Embedder.OpenAI.TimeoutSecs) * time.Second,
		})
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder.Type)
	}
}

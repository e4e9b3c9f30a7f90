package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"slidesearch/internal/config"
	"slidesearch/internal/domain"
	"slidesearch/internal/embedding/openai"
	"slidesearch/internal/embedding/tfidf"
	"slidesearch/internal/extract"
	"slidesearch/internal/index"
	"slidesearch/internal/vectorstore/sqlite"
)

func main() {
	_ = godotenv.Load()

	cfgPath := flag.String("config", "config.yaml", "Path to config YAML")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	emb, err := newEmbedder(cfg)
	if err != nil {
		log.Fatalf("failed to set up embedder: %v", err)
	}

	store, err := sqlite.Open(cfg.ChromaDir)
	if err != nil {
		log.Fatalf("failed to open vector store: %v", err)
	}
	defer store.Close()

	builder := index.NewBuilder(extract.NewPDFExtractor(), emb, store)
	start := time.Now()
	report, err := builder.Build(cfg)
	if err != nil {
		log.Fatalf("index build failed: %v", err)
	}
	log.Printf("indexed %d pages from %d files in %s", report.Pages, report.Files, time.Since(start).Round(time.Millisecond))
	for _, f := range report.Skipped {
		if f.Page < 0 {
			log.Printf("skipped %s: %v", f.Path, f.Err)
		} else {
			log.Printf("skipped %s page %d", f.Path, f.Page)
		}
	}
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

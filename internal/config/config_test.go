package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
pdf_paths:
  - lectures/*.pdf
  - extra/notes.pdf
chroma_dir: ./chroma_db
default_query: what is a k-mer
default_k_results: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.PDFPaths) != 2 {
		t.Errorf("PDFPaths = %v, want 2 entries", cfg.PDFPaths)
	}
	if cfg.ChromaDir != "./chroma_db" {
		t.Errorf("ChromaDir = %q", cfg.ChromaDir)
	}
	if cfg.DefaultQuery != "what is a k-mer" {
		t.Errorf("DefaultQuery = %q", cfg.DefaultQuery)
	}
	if cfg.DefaultKResults != 3 {
		t.Errorf("DefaultKResults = %d, want 3", cfg.DefaultKResults)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeConfig(t, "pdf_paths: [unclosed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_MissingChromaDir(t *testing.T) {
	path := writeConfig(t, `
pdf_paths: [a.pdf]
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error when chroma_dir is missing")
	}
}

func TestLoad_EmptyPDFPaths(t *testing.T) {
	path := writeConfig(t, `
chroma_dir: ./chroma_db
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error when pdf_paths is empty")
	}
}

func TestLoad_DefaultK(t *testing.T) {
	path := writeConfig(t, `
pdf_paths: [a.pdf]
chroma_dir: ./chroma_db
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultKResults != 5 {
		t.Errorf("DefaultKResults = %d, want default 5", cfg.DefaultKResults)
	}
}

func TestLoad_NegativeK(t *testing.T) {
	path := writeConfig(t, `
pdf_paths: [a.pdf]
chroma_dir: ./chroma_db
default_k_results: -2
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative default_k_results")
	}
}

func TestLoad_OpenAIDefaults(t *testing.T) {
	path := writeConfig(t, `
pdf_paths: [a.pdf]
chroma_dir: ./chroma_db
embedder:
  type: openai
  openai:
    model: nomic-embed-text
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	oa := cfg.Embedder.OpenAI
	if oa.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", oa.BaseURL)
	}
	if oa.APIKeyEnv != "OPENAI_API_KEY" {
		t.Errorf("APIKeyEnv = %q", oa.APIKeyEnv)
	}
	if oa.Model != "nomic-embed-text" {
		t.Errorf("Model = %q", oa.Model)
	}
	if oa.TimeoutSecs != 30 {
		t.Errorf("TimeoutSecs = %d", oa.TimeoutSecs)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
port: "9000"
ai_endpoint: "http://localhost:1234/v1"
model: "gpt-4o"
chunk_size: 400
chunk_overlap: 40
documents:
  "Doc A": "http://example.com/a.pdf"
eval_pairs:
  - question: "Who made the One Ring?"
    keyword: "Sauron"
weaviate_store_config:
  host: "http://localhost:8080"
  text2vec: "text2vec-transformers"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 400, cfg.ChunkSize)
	assert.Equal(t, 40, cfg.ChunkOverlap)
	assert.Equal(t, "http://example.com/a.pdf", cfg.Documents["Doc A"])
	require.Len(t, cfg.EvalPairs, 1)
	assert.Equal(t, "Sauron", cfg.EvalPairs[0].Keyword)
	assert.Equal(t, "http://localhost:8080", cfg.WeaviateStoreConfig.Host)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
port: "8000"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.ChunkOverlap)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, 5, cfg.EvalTopK)
	assert.Equal(t, 60, cfg.FetchTimeoutSec)
	assert.Equal(t, 120, cfg.GenerateTimeoutSec)
}

func TestLoadConfig_EnvBinding(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	path := writeConfig(t, `
port: "8000"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

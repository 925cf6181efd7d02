package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/openkb/rag-be/database"
	"github.com/openkb/rag-be/repository"
	"github.com/openkb/rag-be/types"
)

// IngestService orchestrates fetch -> chunk -> store for one document and
// runs the idempotent bulk load at startup.
type IngestService struct {
	fetcher  Fetcher
	vectorDB database.VectorStore
	sources  repository.SourceRepo
	chunking types.ChunkingConfig
}

func NewIngestService(
	fetcher Fetcher,
	vectorDB database.VectorStore,
	sources repository.SourceRepo,
	chunking types.ChunkingConfig,
) *IngestService {
	return &IngestService{
		fetcher:  fetcher,
		vectorDB: vectorDB,
		sources:  sources,
		chunking: chunking,
	}
}

// Ingest runs the pipeline for one document. Every failure is converted to
// a tagged error result; this method never returns a Go error.
func (s *IngestService) Ingest(ctx context.Context, url, name string) *types.IngestResult {
	text, err := s.fetcher.FetchDocument(ctx, url)
	if err != nil {
		return errorResult(err)
	}

	chunks, err := ChunkText(text, s.chunking)
	if err != nil {
		return errorResult(err)
	}

	ids := make([]string, len(chunks))
	texts := make([]string, len(chunks))
	metadatas := make([]types.ChunkMetadata, len(chunks))
	for i, chunk := range chunks {
		ids[i] = uuid.NewString()
		texts[i] = chunk.Text
		metadatas[i] = types.ChunkMetadata{
			Source: name,
			Index:  chunk.Offset,
		}
	}

	// Single batch operation: either all chunks land or none do.
	if err := s.vectorDB.Add(ctx, ids, texts, metadatas); err != nil {
		return errorResult(err)
	}

	// The chunks are committed at this point. A failed index update only
	// costs idempotency of the next bulk load, so log and report success.
	err = s.sources.SaveSource(ctx, &types.IngestedSource{
		Name:       name,
		URL:        url,
		ChunkCount: len(chunks),
		CreatedAt:  time.Now().Unix(),
	})
	if err != nil {
		log.Printf("Warning: failed to record ingested source %q: %v", name, err)
	}

	return &types.IngestResult{
		Status:      types.StatusSuccess,
		ChunksCount: len(chunks),
	}
}

// PrePopulate ingests every configured document whose source name is not
// yet in the side index. Failures are isolated per source.
func (s *IngestService) PrePopulate(ctx context.Context, documents map[string]string) {
	names := make([]string, 0, len(documents))
	for name := range documents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		known, err := s.sources.HasSource(ctx, name)
		if err != nil {
			log.Printf("Failed to check source %q: %v", name, err)
			continue
		}
		if known {
			log.Printf("%q already ingested. Skipping.", name)
			continue
		}

		log.Printf("Ingesting %q...", name)
		result := s.Ingest(ctx, documents[name], name)
		if result.Status == types.StatusError {
			log.Printf("Failed to ingest %q: %s", name, result.Message)
			continue
		}
		log.Printf("Ingested %q (%d chunks)", name, result.ChunksCount)
	}
}

func errorResult(err error) *types.IngestResult {
	return &types.IngestResult{
		Status:  types.StatusError,
		Message: err.Error(),
	}
}

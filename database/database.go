package database

import (
	"context"

	"github.com/openkb/rag-be/types"
)

// VectorStore is the opaque similarity-search capability the RAG pipelines
// are written against. The embedding model and nearest-neighbor index live
// behind it; correctness of the pipelines does not depend on which backend
// binds it.
type VectorStore interface {
	// Add appends new chunk records. ids, texts and metadatas must have
	// equal lengths; existing records are never overwritten.
	Add(ctx context.Context, ids []string, texts []string, metadatas []types.ChunkMetadata) error

	// Query runs a similarity search for queryText and returns up to k
	// ranked hits. An empty store yields an empty result, not an error.
	Query(ctx context.Context, queryText string, k int) ([]types.RetrievalHit, error)
}

package service

import (
	"context"

	"github.com/openkb/rag-be/types"
)

// Fetcher retrieves a document by URL and returns its extracted plain text.
type Fetcher interface {
	FetchDocument(ctx context.Context, url string) (string, error)
}

// Ingester runs the fetch-chunk-store pipeline. Ingest never returns a Go
// error; failures come back as a tagged result.
type Ingester interface {
	Ingest(ctx context.Context, url, name string) *types.IngestResult
	PrePopulate(ctx context.Context, documents map[string]string)
}

// Answerer answers a natural-language query grounded on retrieved chunks.
type Answerer interface {
	Answer(ctx context.Context, query string) (*types.QueryResult, error)
}

// Evaluator scores retrieval quality against the configured answer key.
type Evaluator interface {
	Evaluate(ctx context.Context) *types.EvalResult
}

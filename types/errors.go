package types

import "errors"

// Error kinds for the RAG pipeline. Callers classify failures with
// errors.Is; the concrete cause is carried by wrapping.
var (
	ErrFetch      = errors.New("fetch failed")
	ErrExtraction = errors.New("text extraction failed")
	ErrConfig     = errors.New("invalid chunking config")
	ErrStore      = errors.New("vector store operation failed")
	ErrAnswer     = errors.New("answer generation failed")
	ErrTimeout    = errors.New("operation timed out")
)

package service

import (
	"fmt"

	"github.com/openkb/rag-be/types"
)

// ChunkText splits text into overlapping fixed-size windows. Starting at
// offset 0 it takes chunkSize bytes and advances by chunkSize - overlap,
// so consecutive chunks share exactly overlap bytes and the last chunk may
// be shorter. Pure function, no I/O.
func ChunkText(text string, cfg types.ChunkingConfig) ([]types.Chunk, error) {
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", types.ErrConfig, cfg.ChunkSize)
	}
	if cfg.Overlap < 0 || cfg.Overlap >= cfg.ChunkSize {
		return nil, fmt.Errorf("%w: overlap %d must be in [0, %d)", types.ErrConfig, cfg.Overlap, cfg.ChunkSize)
	}

	stride := cfg.ChunkSize - cfg.Overlap
	var chunks []types.Chunk
	// The offset < len(text) bound also guards against a trailing empty
	// chunk when the text length is an exact multiple of the stride.
	for offset := 0; offset < len(text); offset += stride {
		end := offset + cfg.ChunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, types.Chunk{
			Text:   text[offset:end],
			Offset: offset,
		})
	}
	return chunks, nil
}

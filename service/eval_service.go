package service

import (
	"context"
	"log"
	"strings"

	"github.com/openkb/rag-be/database"
	"github.com/openkb/rag-be/types"
)

// EvalService scores retrieval against a fixed answer key: a pair passes
// when its expected keyword appears anywhere in the retrieved chunk text.
// This is a keyword-presence heuristic, not a correctness oracle. The run
// is read-only against the store.
type EvalService struct {
	vectorDB database.VectorStore
	pairs    []types.QAPair
	topK     int
}

func NewEvalService(vectorDB database.VectorStore, pairs []types.QAPair, topK int) *EvalService {
	return &EvalService{
		vectorDB: vectorDB,
		pairs:    pairs,
		topK:     topK,
	}
}

func (s *EvalService) Evaluate(ctx context.Context) *types.EvalResult {
	hits := 0
	details := make([]types.EvalDetail, 0, len(s.pairs))

	for _, pair := range s.pairs {
		success := s.checkPair(ctx, pair)
		if success {
			hits++
		}
		details = append(details, types.EvalDetail{
			Question: pair.Question,
			Success:  success,
		})
	}

	accuracy := 0.0
	if len(s.pairs) > 0 {
		accuracy = float64(hits) / float64(len(s.pairs))
	}
	return &types.EvalResult{
		Accuracy: accuracy,
		Details:  details,
	}
}

// checkPair treats any query failure as a miss for that pair so a single
// bad query never aborts the whole run.
func (s *EvalService) checkPair(ctx context.Context, pair types.QAPair) bool {
	results, err := s.vectorDB.Query(ctx, pair.Question, s.topK)
	if err != nil {
		log.Printf("Eval query failed for %q: %v", pair.Question, err)
		return false
	}

	texts := make([]string, 0, len(results))
	for _, hit := range results {
		texts = append(texts, hit.Content)
	}
	retrieved := strings.ToLower(strings.Join(texts, " "))
	return strings.Contains(retrieved, strings.ToLower(pair.Keyword))
}

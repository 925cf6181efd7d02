package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openkb/rag-be/types"
)

func TestEvaluate_KeywordPresence(t *testing.T) {
	store := &fakeVectorStore{hits: []types.RetrievalHit{
		{Content: "The One Ring was forged by SAURON in the fires of Mount Doom", Source: "Fellowship", Rank: 1},
	}}
	pairs := []types.QAPair{
		{Question: "Who made the One Ring?", Keyword: "Sauron"},
		{Question: "Who is the wizard?", Keyword: "Gandalf"},
	}
	svc := NewEvalService(store, pairs, 5)

	result := svc.Evaluate(context.Background())

	require.Len(t, result.Details, 2)
	assert.True(t, result.Details[0].Success, "keyword match is case-insensitive")
	assert.False(t, result.Details[1].Success)
	assert.Equal(t, 0.5, result.Accuracy)
}

func TestEvaluate_Deterministic(t *testing.T) {
	store := &fakeVectorStore{hits: []types.RetrievalHit{
		{Content: "Frodo carried the ring with Sam at his side", Source: "Fellowship", Rank: 1},
	}}
	pairs := []types.QAPair{
		{Question: "Who is the bearer?", Keyword: "Frodo"},
		{Question: "Who is the companion?", Keyword: "Sam"},
		{Question: "What is Sting?", Keyword: "sword"},
	}
	svc := NewEvalService(store, pairs, 5)

	first := svc.Evaluate(context.Background())
	second := svc.Evaluate(context.Background())

	assert.Equal(t, first, second)
}

func TestEvaluate_QueryFailureScoredAsMiss(t *testing.T) {
	store := &fakeVectorStore{queryErr: fmt.Errorf("%w: down", types.ErrStore)}
	pairs := []types.QAPair{
		{Question: "Q1", Keyword: "k1"},
		{Question: "Q2", Keyword: "k2"},
	}
	svc := NewEvalService(store, pairs, 5)

	// Must not panic or abort; every pair is reported as a miss.
	result := svc.Evaluate(context.Background())

	require.Len(t, result.Details, 2)
	assert.False(t, result.Details[0].Success)
	assert.False(t, result.Details[1].Success)
	assert.Equal(t, 0.0, result.Accuracy)
}

func TestEvaluate_NoPairs(t *testing.T) {
	svc := NewEvalService(&fakeVectorStore{}, nil, 5)

	result := svc.Evaluate(context.Background())

	assert.Equal(t, 0.0, result.Accuracy)
	assert.Empty(t, result.Details)
}

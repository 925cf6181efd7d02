package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/openkb/rag-be/database"
	"github.com/openkb/rag-be/types"
)

const groundedPromptTemplate = `You are a helpful assistant. Answer the user's question based on the context below.
Provide a detailed answer and include inline citations for each piece of information.
For example, if you use information from Source 'Book A', you should write '... (Citation: Book A)'.
If the answer is not in the context, say "I don't have enough information to answer this question".

Context:
%s

User Question: %s`

// ChatCompleter is the slice of the OpenAI client the answer pipeline
// needs. *openai.Client satisfies it.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewOpenAIClient builds a chat-completion client against an
// OpenAI-compatible endpoint.
func NewOpenAIClient(baseURL, apiKey string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}

// AnswerService retrieves top-k chunks for a query, builds a grounded
// prompt and invokes the generation capability. Unlike ingestion it does
// not catch failures; store and generation errors propagate to the caller.
type AnswerService struct {
	llm             ChatCompleter
	vectorDB        database.VectorStore
	model           string
	topK            int
	generateTimeout time.Duration
}

func NewAnswerService(
	llm ChatCompleter,
	vectorDB database.VectorStore,
	model string,
	topK int,
	generateTimeout time.Duration,
) *AnswerService {
	return &AnswerService{
		llm:             llm,
		vectorDB:        vectorDB,
		model:           model,
		topK:            topK,
		generateTimeout: generateTimeout,
	}
}

func (s *AnswerService) Answer(ctx context.Context, query string) (*types.QueryResult, error) {
	start := time.Now()
	hits, err := s.vectorDB.Query(ctx, query, s.topK)
	if err != nil {
		return nil, err
	}
	retrievalLatency := float64(time.Since(start).Nanoseconds()) / 1e6

	var contextSection strings.Builder
	citations := make([]types.Citation, 0, len(hits))
	seen := make(map[string]bool)
	for i, hit := range hits {
		fmt.Fprintf(&contextSection, "[Citation %d, Source: %s]: %s\n\n", i+1, hit.Source, hit.Content)
		if !seen[hit.Source] {
			seen[hit.Source] = true
			citations = append(citations, types.Citation{
				Rank:   len(citations) + 1,
				Source: hit.Source,
			})
		}
	}

	// Zero hits still go to generation: the prompt instructs the model to
	// admit insufficient information.
	prompt := fmt.Sprintf(groundedPromptTemplate, contextSection.String(), query)

	genCtx := ctx
	if s.generateTimeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.generateTimeout)
		defer cancel()
	}

	resp, err := s.llm.CreateChatCompletion(
		genCtx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", types.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", types.ErrAnswer, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no response generated", types.ErrAnswer)
	}

	return &types.QueryResult{
		Answer:             resp.Choices[0].Message.Content,
		RetrievalLatencyMS: retrievalLatency,
		Citations:          citations,
	}, nil
}

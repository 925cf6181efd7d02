package cmd

import (
	"context"
	"fmt"

	"github.com/openkb/rag-be/config"
	"github.com/openkb/rag-be/database"
	"github.com/openkb/rag-be/repository"
	"github.com/openkb/rag-be/service"
	"github.com/openkb/rag-be/types"
)

// deps holds the process-scoped state shared by the commands. Clients are
// built once here and injected into the pipelines.
type deps struct {
	cfg           *config.Config
	vectorDB      *database.WeaviateStore
	sources       repository.SourceRepo
	ingestService *service.IngestService
	answerService *service.AnswerService
	evalService   *service.EvalService
}

func buildDeps(ctx context.Context, cfgPath string) (*deps, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	vectorDB, err := database.NewWeaviateStore(cfg.WeaviateStoreConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Weaviate database: %w", err)
	}

	mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	sources := repository.NewSourceRepo(
		mongoClient.Database("knowledge").Collection("ingested_sources"))

	fetchService := service.NewFetchService(cfg.FetchTimeout(), cfg.TempDir)
	ingestService := service.NewIngestService(fetchService, vectorDB, sources, types.ChunkingConfig{
		ChunkSize: cfg.ChunkSize,
		Overlap:   cfg.ChunkOverlap,
	})

	llm := service.NewOpenAIClient(cfg.AIEndpoint, cfg.OpenAIAPIKey)
	answerService := service.NewAnswerService(llm, vectorDB, cfg.Model, cfg.TopK, cfg.GenerateTimeout())
	evalService := service.NewEvalService(vectorDB, cfg.EvalPairs, cfg.EvalTopK)

	return &deps{
		cfg:           cfg,
		vectorDB:      vectorDB,
		sources:       sources,
		ingestService: ingestService,
		answerService: answerService,
		evalService:   evalService,
	}, nil
}

package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/weaviate/weaviate-go-client/v4/weaviate"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/auth"
	"github.com/weaviate/weaviate-go-client/v4/weaviate/graphql"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/openkb/rag-be/config"
	"github.com/openkb/rag-be/types"
)

const BATCH_SIZE = 200

var (
	// KNOWLEDGE_CLASS holds one object per chunk. Weaviate class names must
	// be capitalized, so the reference collection "data_knowledge" becomes
	// DataKnowledge.
	KNOWLEDGE_CLASS        = "DataKnowledge"
	KNOWLEDGE_CLASS_OBJECT = &models.Class{
		Class: KNOWLEDGE_CLASS,
		Properties: []*models.Property{
			{Name: "content", DataType: []string{"text"}},
			{Name: "source", DataType: []string{"text"}},
			{Name: "index", DataType: []string{"int"}},
		},
		VectorIndexType: "hnsw",
	}
)

type WeaviateStore struct {
	client *weaviate.Client
}

func NewWeaviateStore(cfg config.WeaviateStoreConfig) (*WeaviateStore, error) {
	var scheme string
	if strings.Contains(cfg.Host, "https") {
		scheme = "https"
	} else {
		scheme = "http"
	}
	host := strings.TrimPrefix(cfg.Host, scheme+"://")
	clientCfg := weaviate.Config{
		Host:   host,
		Scheme: scheme,
	}
	if cfg.APIKey != "" {
		clientCfg.AuthConfig = auth.ApiKey{
			Value: cfg.APIKey,
		}
		clientCfg.Headers = map[string]string{
			"X-Weaviate-Api-Key":     cfg.APIKey,
			"X-Weaviate-Cluster-Url": fmt.Sprintf("%s://%s", scheme, host),
		}
	}
	KNOWLEDGE_CLASS_OBJECT.Vectorizer = cfg.Text2Vec
	KNOWLEDGE_CLASS_OBJECT.ModuleConfig = cfg.ModuleConfig
	client, err := weaviate.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create weaviate client: %v", err)
	}

	schema, err := client.Schema().Getter().Do(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get schema: %v", err)
	}

	hasKnowledgeClass := false
	for _, class := range schema.Classes {
		if class.Class == KNOWLEDGE_CLASS {
			hasKnowledgeClass = true
			break
		}
	}
	// Create the class if it doesn't exist
	if !hasKnowledgeClass {
		err = client.Schema().ClassCreator().WithClass(KNOWLEDGE_CLASS_OBJECT).Do(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to create %s class: %v", KNOWLEDGE_CLASS, err)
		}
	}
	return &WeaviateStore{
		client: client,
	}, nil
}

// ReInit drops and recreates the knowledge class, discarding all chunks.
func (s *WeaviateStore) ReInit() error {
	err := s.client.Schema().ClassDeleter().WithClassName(KNOWLEDGE_CLASS).Do(context.Background())
	if err != nil {
		return fmt.Errorf("failed to delete %s class: %v", KNOWLEDGE_CLASS, err)
	}

	err = s.client.Schema().ClassCreator().WithClass(KNOWLEDGE_CLASS_OBJECT).Do(context.Background())
	if err != nil {
		return fmt.Errorf("failed to create %s class: %v", KNOWLEDGE_CLASS, err)
	}
	return nil
}

// Add appends chunk records in batches. Ids are supplied by the caller so
// re-runs never overwrite records written earlier.
func (s *WeaviateStore) Add(ctx context.Context, ids []string, texts []string, metadatas []types.ChunkMetadata) error {
	if len(ids) != len(texts) || len(texts) != len(metadatas) {
		return fmt.Errorf("%w: mismatched lengths ids=%d texts=%d metadatas=%d",
			types.ErrStore, len(ids), len(texts), len(metadatas))
	}

	total := len(ids)
	for i := 0; i < total; i += BATCH_SIZE {
		end := i + BATCH_SIZE
		if end > total {
			end = total
		}

		batcher := s.client.Batch().ObjectsBatcher()
		for j := i; j < end; j++ {
			batcher = batcher.WithObjects(&models.Object{
				ID:    strfmt.UUID(ids[j]),
				Class: KNOWLEDGE_CLASS,
				Properties: map[string]interface{}{
					"content": texts[j],
					"source":  metadatas[j].Source,
					"index":   metadatas[j].Index,
				},
			})
		}

		if _, err := batcher.Do(ctx); err != nil {
			return fmt.Errorf("%w: failed to insert batch %d-%d: %v", types.ErrStore, i, end, err)
		}

		log.Printf("Inserted batch %d-%d of %d chunks", i, end, total)
	}

	return nil
}

// Query runs a nearText similarity search and returns hits in rank order.
func (s *WeaviateStore) Query(ctx context.Context, queryText string, k int) ([]types.RetrievalHit, error) {
	fields := []graphql.Field{
		{Name: "content"},
		{Name: "source"},
		{Name: "index"},
		{Name: "_additional", Fields: []graphql.Field{{Name: "distance"}, {Name: "id"}}},
	}
	nearText := s.client.GraphQL().NearTextArgBuilder().
		WithConcepts([]string{queryText})

	result, err := s.client.GraphQL().Get().
		WithClassName(KNOWLEDGE_CLASS).
		WithFields(fields...).
		WithNearText(nearText).
		WithLimit(k).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStore, err)
	}
	if result.Errors != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStore, result.Errors[0].Message)
	}

	var hits []types.RetrievalHit
	if data, ok := result.Data["Get"].(map[string]interface{})[KNOWLEDGE_CLASS].([]interface{}); ok {
		for _, item := range data {
			obj, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			hit := types.RetrievalHit{
				Rank: len(hits) + 1,
			}
			if content, ok := obj["content"].(string); ok {
				hit.Content = content
			}
			if source, ok := obj["source"].(string); ok {
				hit.Source = source
			}
			if index, ok := obj["index"].(float64); ok {
				hit.Index = int(index)
			}
			if additional, ok := obj["_additional"].(map[string]interface{}); ok {
				if distance, ok := additional["distance"].(float64); ok {
					hit.Distance = float32(distance)
				}
			}
			hits = append(hits, hit)
		}
	}

	return hits, nil
}

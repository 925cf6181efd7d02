package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/openkb/rag-be/types"
)

// SourceRepo is the side index of ingested source names. The vector store
// cannot enumerate distinct sources cheaply, so this index is written
// after every successful add and consulted for dedup-by-name.
type SourceRepo interface {
	SaveSource(ctx context.Context, source *types.IngestedSource) error
	HasSource(ctx context.Context, name string) (bool, error)
	ListSources(ctx context.Context) ([]string, error)
	DeleteAll(ctx context.Context) error
}

type sourceRepo struct {
	collection *mongo.Collection
}

func NewSourceRepo(collection *mongo.Collection) SourceRepo {
	return &sourceRepo{
		collection: collection,
	}
}

func (r *sourceRepo) SaveSource(ctx context.Context, source *types.IngestedSource) error {
	_, err := r.collection.ReplaceOne(ctx,
		map[string]string{"_id": source.Name},
		source,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *sourceRepo) HasSource(ctx context.Context, name string) (bool, error) {
	err := r.collection.FindOne(ctx, map[string]string{"_id": name}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *sourceRepo) ListSources(ctx context.Context) ([]string, error) {
	cursor, err := r.collection.Find(ctx, map[string]string{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var source types.IngestedSource
		if err := cursor.Decode(&source); err != nil {
			return nil, err
		}
		names = append(names, source.Name)
	}
	return names, cursor.Err()
}

func (r *sourceRepo) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, map[string]string{})
	return err
}

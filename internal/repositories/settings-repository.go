package repositories

import (
	"context"
	"errors"

	"fitness-center/internal/entities"
	apperrors "fitness-center/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollection = "settings"

type SettingsRepositoryInterface interface {
	GetRateLimit(ctx context.Context) (*entities.RateLimitSettings, error)
	SaveRateLimit(ctx context.Context, settings *entities.RateLimitSettings) error
}

type SettingsRepository struct {
	coll *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) SettingsRepositoryInterface {
	return &SettingsRepository{coll: db.Collection(settingsCollection)}
}

func (r *SettingsRepository) GetRateLimit(ctx context.Context) (*entities.RateLimitSettings, error) {
	var settings entities.RateLimitSettings
	err := r.coll.FindOne(ctx, bson.M{"_id": entities.RateLimitSettingsID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepository) SaveRateLimit(ctx context.Context, settings *entities.RateLimitSettings) error {
	settings.ID = entities.RateLimitSettingsID
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": entities.RateLimitSettingsID},
		settings,
		options.Replace().SetUpsert(true),
	)
	return err
}

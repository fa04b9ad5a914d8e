package repositories

import (
	"context"
	"errors"
	"strings"

	"fitness-center/internal/entities"
	apperrors "fitness-center/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const accountCollection = "accounts"

type AccountRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entities.Account, error)
	FindByPhone(ctx context.Context, phone string) (*entities.Account, error)
	Create(ctx context.Context, account *entities.Account) error
	EnsureIndexes(ctx context.Context) error
}

type AccountRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewAccountRepository(db *mongo.Database, logger *zap.Logger) AccountRepositoryInterface {
	return &AccountRepository{coll: db.Collection(accountCollection), logger: logger}
}

// EnsureIndexes creates unique sparse indexes on email and phone.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	return err
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*entities.Account, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (r *AccountRepository) FindByPhone(ctx context.Context, phone string) (*entities.Account, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	_, err := r.coll.InsertOne(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewBadRequestError("account with this email or phone already exists")
	}
	return err
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*entities.Account, error) {
	var account entities.Account
	err := r.coll.FindOne(ctx, filter).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		r.logger.Error("AccountRepository: query failed", zap.Any("filter", filter), zap.Error(err))
		return nil, err
	}
	return &account, nil
}

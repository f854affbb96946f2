package repository

import (
	"context"
	"errors"
	"time"

	"siddeshlogistics/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoInitialRepo struct {
	DB *mongo.Database
}

func NewMongoInitialRepo(db *mongo.Database) *MongoInitialRepo {
	return &MongoInitialRepo{DB: db}
}

func (r *MongoInitialRepo) SaveInitial(ctx context.Context, initial *models.InitialSetup) error {
	if initial.CreatedAt.IsZero() {
		initial.CreatedAt = time.Now().UTC()
	}
	if initial.ID == "" {
		initial.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.DB.Collection("initial_setup").ReplaceOne(ctx,
		bson.M{"_id": initial.ID},
		initial,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *MongoInitialRepo) GetInitial(ctx context.Context, ownerID string) (*models.InitialSetup, error) {
	var initial models.InitialSetup
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := r.DB.Collection("initial_setup").FindOne(ctx, bson.M{"owner_id": ownerID}, opts).Decode(&initial)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &initial, nil
}

package repository

import (
	"context"

	"quizhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *ResultRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error) {
	cur, err := r.Col.Find(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.Result
	for cur.Next(ctx) {
		var res models.Result
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.Result, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.Result
	for cur.Next(ctx) {
		var res models.Result
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}

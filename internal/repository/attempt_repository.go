package repository

import (
	"context"
	"errors"

	"quizhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

func (r *AttemptRepository) FindByID(ctx context.Context, id string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// SubmitPending flips a pending attempt to submitted, writing answers and
// score in the same conditional update. The filter only matches pending
// attempts, so of two concurrent submissions exactly one wins; the loser
// sees ok=false.
func (r *AttemptRepository) SubmitPending(ctx context.Context, id string, answers []models.AttemptAnswer, score int) (bool, error) {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.AttemptStatusPending},
		bson.M{"$set": bson.M{
			"answers": answers,
			"score":   score,
			"status":  models.AttemptStatusSubmitted,
		}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// RevertSubmission reopens a submitted attempt after a downstream write
// failed, clearing the provisional answers and score.
func (r *AttemptRepository) RevertSubmission(ctx context.Context, id string) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.AttemptStatusSubmitted},
		bson.M{"$set": bson.M{
			"answers": []models.AttemptAnswer{},
			"score":   0,
			"status":  models.AttemptStatusPending,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrAttemptNotFound
	}
	return nil
}

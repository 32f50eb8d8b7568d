package repository

import (
	"context"
	"errors"
	"time"

	"quizhub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindAll(ctx context.Context) ([]models.Quiz, error) {
	cur, err := r.Col.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

func (r *QuizRepository) Update(ctx context.Context, quiz *models.Quiz) error {
	quiz.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"title":            quiz.Title,
		"description":      quiz.Description,
		"duration_minutes": quiz.DurationMinutes,
		"is_active":        quiz.IsActive,
		"updated_at":       quiz.UpdatedAt,
	}}
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": quiz.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrQuizNotFound
	}
	return nil
}

// Delete is a soft delete so attempts and results keep a valid reference.
func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrQuizNotFound
	}
	return nil
}

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

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, question)
	return err
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) Update(ctx context.Context, question *models.Question) error {
	question.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"text":           question.Text,
		"options":        question.Options,
		"correct_answer": question.CorrectAnswer,
		"type":           question.Type,
		"updated_at":     question.UpdatedAt,
	}}
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": question.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrQuestionNotFound
	}
	return nil
}

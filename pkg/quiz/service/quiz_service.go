package service

import (
	"context"
	"errors"

	"herbaverse/entities"
	"herbaverse/pkg/ai"
)

var ErrInvalidScore = errors.New("score out of range")

type GenerateRequest struct {
	Topic        string
	Difficulty   string
	NumQuestions int
}

type QuizService interface {
	Generate(ctx context.Context, req GenerateRequest) (*ai.Quiz, error)
	SubmitScore(uid, topic, difficulty string, score, total int) (*entities.QuizScore, error)
	Scores(uid string) ([]entities.QuizScore, error)
}

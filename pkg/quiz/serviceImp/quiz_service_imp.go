package serviceImp

import (
	"context"

	"github.com/google/uuid"

	"herbaverse/entities"
	"herbaverse/pkg/ai"
	"herbaverse/pkg/quiz/repository"
	"herbaverse/pkg/quiz/service"
)

type Svc struct {
	llm  ai.Client
	repo repository.QuizRepository
}

func New(llm ai.Client, repo repository.QuizRepository) *Svc {
	return &Svc{llm: llm, repo: repo}
}

func (s *Svc) Generate(ctx context.Context, req service.GenerateRequest) (*ai.Quiz, error) {
	n := req.NumQuestions
	if n <= 0 {
		n = 5
	}
	if n > 10 {
		n = 10
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	return s.llm.GenerateQuiz(ctx, req.Topic, difficulty, n)
}

func (s *Svc) SubmitScore(uid, topic, difficulty string, score, total int) (*entities.QuizScore, error) {
	if total <= 0 || score < 0 || score > total {
		return nil, service.ErrInvalidScore
	}
	row := &entities.QuizScore{
		AttemptID:      uuid.NewString(),
		UserID:         uid,
		Topic:          topic,
		Difficulty:     difficulty,
		Score:          score,
		TotalQuestions: total,
	}
	if err := s.repo.CreateScore(row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Svc) Scores(uid string) ([]entities.QuizScore, error) {
	return s.repo.ScoresByUser(uid)
}

package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herbaverse/entities"
	"herbaverse/pkg/ai"
	"herbaverse/pkg/quiz/service"
)

type fakeLLM struct {
	topic      string
	difficulty string
	n          int
}

func (f *fakeLLM) SuggestPlants(ctx context.Context, summary, query string) (*ai.PlantAnalysis, error) {
	return nil, ai.ErrUnavailable
}

func (f *fakeLLM) GenerateQuiz(ctx context.Context, topic, difficulty string, n int) (*ai.Quiz, error) {
	f.topic, f.difficulty, f.n = topic, difficulty, n
	return &ai.Quiz{TitleEN: "T", Questions: make([]ai.QuizQuestion, n)}, nil
}

type fakeRepo struct{ rows []entities.QuizScore }

func (f *fakeRepo) CreateScore(s *entities.QuizScore) error {
	f.rows = append(f.rows, *s)
	return nil
}

func (f *fakeRepo) ScoresByUser(uid string) ([]entities.QuizScore, error) { return f.rows, nil }

func TestGenerateAppliesDefaults(t *testing.T) {
	llm := &fakeLLM{}
	svc := New(llm, &fakeRepo{})

	q, err := svc.Generate(context.Background(), service.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "medium", llm.difficulty)
	assert.Equal(t, 5, llm.n)
	assert.Len(t, q.Questions, 5)
}

func TestGenerateClampsQuestionCount(t *testing.T) {
	llm := &fakeLLM{}
	svc := New(llm, &fakeRepo{})

	_, err := svc.Generate(context.Background(), service.GenerateRequest{NumQuestions: 50, Difficulty: "hard", Topic: "neem"})
	require.NoError(t, err)
	assert.Equal(t, 10, llm.n)
	assert.Equal(t, "hard", llm.difficulty)
	assert.Equal(t, "neem", llm.topic)
}

func TestSubmitScoreValidation(t *testing.T) {
	svc := New(&fakeLLM{}, &fakeRepo{})

	cases := []struct{ score, total int }{
		{-1, 5},
		{6, 5},
		{0, 0},
	}
	for _, c := range cases {
		_, err := svc.SubmitScore("u1", "herbs", "easy", c.score, c.total)
		assert.ErrorIs(t, err, service.ErrInvalidScore)
	}
}

func TestSubmitScorePersistsWithAttemptID(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(&fakeLLM{}, repo)

	row, err := svc.SubmitScore("u1", "herbs", "easy", 4, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, row.AttemptID)
	assert.Equal(t, "u1", row.UserID)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, 4, repo.rows[0].Score)
}

package repositoryImp

import (
	"herbaverse/entities"
	"herbaverse/pkg/quiz/repository"

	"gorm.io/gorm"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.QuizRepository { return &repo{db} }

func (r *repo) CreateScore(s *entities.QuizScore) error { return r.db.Create(s).Error }

func (r *repo) ScoresByUser(uid string) ([]entities.QuizScore, error) {
	var rows []entities.QuizScore
	return rows, r.db.Where("user_id = ?", uid).Order("score_id DESC").Find(&rows).Error
}

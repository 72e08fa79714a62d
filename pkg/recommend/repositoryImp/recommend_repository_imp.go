package repositoryImp

import (
	"herbaverse/entities"
	"herbaverse/pkg/recommend/repository"

	"gorm.io/gorm"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendRepository { return &repo{db} }

func (r *repo) Create(rec *entities.RecommendationLog) error { return r.db.Create(rec).Error }

func (r *repo) ListByUser(uid string, limit int) ([]entities.RecommendationLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []entities.RecommendationLog
	return rows, r.db.Where("user_id = ?", uid).Order("rec_id DESC").Limit(limit).Find(&rows).Error
}

package repository

import "herbaverse/entities"

type RecommendRepository interface {
	Create(r *entities.RecommendationLog) error
	ListByUser(uid string, limit int) ([]entities.RecommendationLog, error)
}

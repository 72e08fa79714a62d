package repositoryImp

import (
	"gorm.io/gorm"

	"herbaverse/entities"
	"herbaverse/pkg/remedy/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RemedyRepository { return &repo{db} }

func (r *repo) Create(rem *entities.Remedy) error { return r.db.Create(rem).Error }

func (r *repo) List(plantID string) ([]entities.Remedy, error) {
	var rows []entities.Remedy
	q := r.db.Order("remedy_id DESC")
	if plantID != "" {
		q = q.Where("plant_id = ?", plantID)
	}
	return rows, q.Find(&rows).Error
}

func (r *repo) FindByID(id uint) (*entities.Remedy, error) {
	var rem entities.Remedy
	if err := r.db.First(&rem, "remedy_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rem, nil
}

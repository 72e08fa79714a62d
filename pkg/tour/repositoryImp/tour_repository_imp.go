package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"herbaverse/entities"
	"herbaverse/pkg/tour/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TourRepository { return &repo{db} }

func (r *repo) MarkStop(uid, tourID, stopPlantID string, totalStops int) (*entities.TourProgress, error) {
	var p entities.TourProgress
	err := r.db.Where("user_id = ? AND tour_id = ?", uid, tourID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = entities.TourProgress{UserID: uid, TourID: tourID, CompletedStops: []string{}}
	} else if err != nil {
		return nil, err
	}

	seen := false
	for _, s := range p.CompletedStops {
		if s == stopPlantID {
			seen = true
			break
		}
	}
	if !seen {
		p.CompletedStops = append(p.CompletedStops, stopPlantID)
	}
	if totalStops > 0 && len(p.CompletedStops) >= totalStops {
		p.Completed = true
	}

	if err := r.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) Get(uid, tourID string) (*entities.TourProgress, error) {
	var p entities.TourProgress
	if err := r.db.Where("user_id = ? AND tour_id = ?", uid, tourID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) ListByUser(uid string) ([]entities.TourProgress, error) {
	var rows []entities.TourProgress
	return rows, r.db.Where("user_id = ?", uid).Find(&rows).Error
}

package repository

import "herbaverse/entities"

type TourRepository interface {
	// MarkStop records one visited stop and flips Completed once all
	// totalStops are visited. Idempotent per stop.
	MarkStop(uid, tourID, stopPlantID string, totalStops int) (*entities.TourProgress, error)
	Get(uid, tourID string) (*entities.TourProgress, error)
	ListByUser(uid string) ([]entities.TourProgress, error)
}

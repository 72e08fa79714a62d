package repository

import "herbaverse/entities"

type RemedyRepository interface {
	Create(r *entities.Remedy) error
	List(plantID string) ([]entities.Remedy, error)
	FindByID(id uint) (*entities.Remedy, error)
}

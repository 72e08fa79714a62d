package repository

import "herbaverse/entities"

type NoteRepository interface {
	Upsert(n *entities.PlantNote) error
	ListByUser(uid string) ([]entities.PlantNote, error)
	Delete(uid string, noteID uint) error
}

package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"herbaverse/entities"
	"herbaverse/pkg/note/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NoteRepository { return &repo{db} }

// Upsert keeps one note per user+plant, overwriting the text on rewrite.
func (r *repo) Upsert(n *entities.PlantNote) error {
	var cur entities.PlantNote
	err := r.db.Where("user_id = ? AND plant_id = ?", n.UserID, n.PlantID).First(&cur).Error
	if err == nil {
		cur.Note = n.Note
		if err := r.db.Save(&cur).Error; err != nil {
			return err
		}
		*n = cur
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(n).Error
}

func (r *repo) ListByUser(uid string) ([]entities.PlantNote, error) {
	var rows []entities.PlantNote
	return rows, r.db.Where("user_id = ?", uid).Order("updated_at DESC").Find(&rows).Error
}

func (r *repo) Delete(uid string, noteID uint) error {
	return r.db.Where("user_id = ? AND note_id = ?", uid, noteID).Delete(&entities.PlantNote{}).Error
}

package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"herbaverse/entities"
	"herbaverse/pkg/bookmark/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BookmarkRepository { return &repo{db} }

func (r *repo) ToggleBookmark(uid, plantID string) (bool, error) {
	var b entities.Bookmark
	err := r.db.Where("user_id = ? AND plant_id = ?", uid, plantID).First(&b).Error
	if err == nil {
		return false, r.db.Delete(&b).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return true, r.db.Create(&entities.Bookmark{UserID: uid, PlantID: plantID}).Error
}

func (r *repo) ListBookmarks(uid string) ([]entities.Bookmark, error) {
	var rows []entities.Bookmark
	return rows, r.db.Where("user_id = ?", uid).Order("bookmark_id DESC").Find(&rows).Error
}

func (r *repo) ToggleLike(uid, plantID string) (bool, error) {
	var l entities.Like
	err := r.db.Where("user_id = ? AND plant_id = ?", uid, plantID).First(&l).Error
	if err == nil {
		return false, r.db.Delete(&l).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return true, r.db.Create(&entities.Like{UserID: uid, PlantID: plantID}).Error
}

func (r *repo) CountLikes(plantID string) (int64, error) {
	var n int64
	return n, r.db.Model(&entities.Like{}).Where("plant_id = ?", plantID).Count(&n).Error
}

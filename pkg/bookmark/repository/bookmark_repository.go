package repository

import "herbaverse/entities"

type BookmarkRepository interface {
	ToggleBookmark(uid, plantID string) (added bool, err error)
	ListBookmarks(uid string) ([]entities.Bookmark, error)
	ToggleLike(uid, plantID string) (added bool, err error)
	CountLikes(plantID string) (int64, error)
}

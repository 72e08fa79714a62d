package entities

import "time"

type Bookmark struct {
	BookmarkID uint   `gorm:"primaryKey" json:"bookmark_id"`
	UserID     string `gorm:"index" json:"user_id"`
	PlantID    string `gorm:"index" json:"plant_id"`
	CreatedAt  time.Time
}

type Like struct {
	LikeID    uint   `gorm:"primaryKey" json:"like_id"`
	UserID    string `gorm:"index" json:"user_id"`
	PlantID   string `gorm:"index" json:"plant_id"`
	CreatedAt time.Time
}

type PlantNote struct {
	NoteID    uint   `gorm:"primaryKey" json:"note_id"`
	UserID    string `gorm:"index" json:"user_id"`
	PlantID   string `gorm:"index" json:"plant_id"`
	Note      string `json:"note"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

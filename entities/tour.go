package entities

import "time"

type TourProgress struct {
	ProgressID     uint     `gorm:"primaryKey" json:"progress_id"`
	UserID         string   `gorm:"index" json:"user_id"`
	TourID         string   `gorm:"index" json:"tour_id"`
	CompletedStops []string `gorm:"serializer:json" json:"completed_stops"`
	Completed      bool     `json:"completed"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package entities

import "time"

type Remedy struct {
	RemedyID    uint   `gorm:"primaryKey" json:"remedy_id"`
	UserID      string `gorm:"index" json:"user_id"`
	PlantID     string `gorm:"index" json:"plant_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Preparation string `json:"preparation"`
	SourceURL   string `json:"source_url"`
	Approved    bool   `json:"approved"`
	CreatedAt   time.Time
}

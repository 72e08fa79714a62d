package entities

import "time"

// RecommendationLog is the audit row written after a successful suggestion.
// PlantsJSON holds the final (reconciled) recommendation list as JSON.
type RecommendationLog struct {
	RecID      uint   `gorm:"primaryKey" json:"rec_id"`
	UserID     string `gorm:"index" json:"user_id"`
	QueryText  string `json:"query_text"`
	PlantsJSON string `json:"plants_json"`
	AIResponse string `json:"-"`
	CreatedAt  time.Time
}

package entities

import "time"

type QuizScore struct {
	ScoreID        uint   `gorm:"primaryKey" json:"score_id"`
	AttemptID      string `gorm:"index" json:"attempt_id"`
	UserID         string `gorm:"index" json:"user_id"`
	Topic          string `json:"topic"`
	Difficulty     string `json:"difficulty"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CreatedAt      time.Time
}

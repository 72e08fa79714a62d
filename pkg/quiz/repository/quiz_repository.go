package repository

import "herbaverse/entities"

type QuizRepository interface {
	CreateScore(s *entities.QuizScore) error
	ScoresByUser(uid string) ([]entities.QuizScore, error)
}

package service

import (
	"context"
	"errors"

	"herbaverse/entities"
	"herbaverse/pkg/recommend/types"
)

// ErrInvalidInput is returned before any model call when the query is
// empty or whitespace-only.
var ErrInvalidInput = errors.New("query is required")

type RecommendService interface {
	Suggest(ctx context.Context, userID, query string) (*types.Result, error)
	History(userID string, limit int) ([]entities.RecommendationLog, error)
}

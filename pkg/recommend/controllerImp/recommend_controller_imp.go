package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"herbaverse/pkg/ai"
	"herbaverse/pkg/recommend/service"
)

type RecommendCtrl struct{ s service.RecommendService }

func New(s service.RecommendService) *RecommendCtrl { return &RecommendCtrl{s: s} }

type suggestReq struct {
	Query  string  `json:"query"`
	UserID *string `json:"userId"`
}

func (h *RecommendCtrl) Suggest(c echo.Context) error {
	var req suggestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid json: " + err.Error()})
	}
	uid := ""
	if req.UserID != nil {
		uid = *req.UserID
	}

	res, err := h.s.Suggest(c.Request().Context(), uid, req.Query)
	if err != nil {
		status, msg := suggestFailure(err)
		return c.JSON(status, map[string]any{"error": msg, "query": req.Query})
	}
	return c.JSON(http.StatusOK, res)
}

// suggestFailure maps pipeline errors to a status and a short
// human-readable message. Upstream payloads are never echoed back.
func suggestFailure(err error) (int, string) {
	var se *ai.StatusError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, "Query is required"
	case errors.As(err, &se):
		if se.Code == http.StatusTooManyRequests {
			return http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."
		}
		if se.Code == http.StatusPaymentRequired {
			return http.StatusPaymentRequired, "AI credits exhausted. Please add credits to continue."
		}
		return http.StatusBadGateway, "AI service is currently unavailable"
	case errors.Is(err, ai.ErrUnavailable):
		return http.StatusBadGateway, "AI service is currently unavailable"
	case errors.Is(err, ai.ErrMalformedResponse):
		return http.StatusInternalServerError, "Failed to parse AI analysis"
	}
	return http.StatusInternalServerError, "Failed to process plant suggestions"
}

func (h *RecommendCtrl) History(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "user required"})
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	rows, err := h.s.History(uid, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

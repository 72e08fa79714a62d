package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"herbaverse/pkg/ai"
	"herbaverse/pkg/quiz/service"
)

type QuizCtrl struct{ s service.QuizService }

func New(s service.QuizService) *QuizCtrl { return &QuizCtrl{s: s} }

type generateReq struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions"`
}

func (h *QuizCtrl) Generate(c echo.Context) error {
	var req generateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid json: " + err.Error(), "success": false})
	}

	quiz, err := h.s.Generate(c.Request().Context(), service.GenerateRequest{
		Topic:        req.Topic,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		status, msg := generateFailure(err)
		return c.JSON(status, map[string]any{"error": msg, "success": false})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "quiz": quiz})
}

func generateFailure(err error) (int, string) {
	var se *ai.StatusError
	switch {
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
		return http.StatusInternalServerError, "Failed to parse quiz data from AI response"
	}
	return http.StatusInternalServerError, "Failed to generate quiz"
}

type scoreReq struct {
	Topic          string `json:"topic"`
	Difficulty     string `json:"difficulty"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}

func (h *QuizCtrl) SubmitScore(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "user required"})
	}
	var req scoreReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid json: " + err.Error()})
	}
	row, err := h.s.SubmitScore(uid, req.Topic, req.Difficulty, req.Score, req.TotalQuestions)
	if err != nil {
		if errors.Is(err, service.ErrInvalidScore) {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, row)
}

func (h *QuizCtrl) Scores(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]any{"error": "user required"})
	}
	rows, err := h.s.Scores(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"herbaverse/pkg/tour"
	"herbaverse/pkg/tour/repository"
)

type TourCtrl struct{ repo repository.TourRepository }

func New(repo repository.TourRepository) *TourCtrl { return &TourCtrl{repo} }

func (h *TourCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, tour.Builtin())
}

func (h *TourCtrl) Get(c echo.Context) error {
	t, ok := tour.Find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "not found"})
	}
	return c.JSON(http.StatusOK, t)
}

type progressReq struct {
	StopPlantID string `json:"stop_plant_id"`
}

func (h *TourCtrl) PatchProgress(c echo.Context) error {
	uid := c.Get("uid").(string)
	t, ok := tour.Find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "not found"})
	}
	var req progressReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid json: " + err.Error()})
	}
	valid := false
	for _, s := range t.Stops {
		if s.PlantID == req.StopPlantID {
			valid = true
			break
		}
	}
	if !valid {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "unknown stop: " + req.StopPlantID})
	}
	p, err := h.repo.MarkStop(uid, t.ID, req.StopPlantID, len(t.Stops))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *TourCtrl) GetProgress(c echo.Context) error {
	uid := c.Get("uid").(string)
	p, err := h.repo.Get(uid, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "no progress"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *TourCtrl) ListProgress(c echo.Context) error {
	uid := c.Get("uid").(string)
	rows, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"herbaverse/entities"
	"herbaverse/pkg/note/repository"
)

type NoteCtrl struct{ repo repository.NoteRepository }

func New(repo repository.NoteRepository) *NoteCtrl { return &NoteCtrl{repo} }

type noteReq struct {
	Note string `json:"note"`
}

func (h *NoteCtrl) Upsert(c echo.Context) error {
	uid := c.Get("uid").(string)
	plantID := c.Param("id")
	var req noteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(req.Note) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "note is required"})
	}
	n := &entities.PlantNote{UserID: uid, PlantID: plantID, Note: req.Note}
	if err := h.repo.Upsert(n); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, n)
}

func (h *NoteCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	rows, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *NoteCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("note_id"))
	if err := h.repo.Delete(uid, uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

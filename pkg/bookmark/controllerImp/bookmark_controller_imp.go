package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"herbaverse/pkg/bookmark/repository"
)

type BookmarkCtrl struct{ repo repository.BookmarkRepository }

func New(repo repository.BookmarkRepository) *BookmarkCtrl { return &BookmarkCtrl{repo} }

func (h *BookmarkCtrl) ToggleBookmark(c echo.Context) error {
	uid := c.Get("uid").(string)
	plantID := c.Param("id")
	added, err := h.repo.ToggleBookmark(uid, plantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"plant_id": plantID, "bookmarked": added})
}

func (h *BookmarkCtrl) ListBookmarks(c echo.Context) error {
	uid := c.Get("uid").(string)
	rows, err := h.repo.ListBookmarks(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *BookmarkCtrl) ToggleLike(c echo.Context) error {
	uid := c.Get("uid").(string)
	plantID := c.Param("id")
	added, err := h.repo.ToggleLike(uid, plantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"plant_id": plantID, "liked": added})
}

func (h *BookmarkCtrl) CountLikes(c echo.Context) error {
	plantID := c.Param("id")
	n, err := h.repo.CountLikes(plantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"plant_id": plantID, "likes": n})
}

package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"herbaverse/pkg/catalog"
)

type PlantCtrl struct{ cat *catalog.Catalog }

func New(cat *catalog.Catalog) *PlantCtrl { return &PlantCtrl{cat: cat} }

func (h *PlantCtrl) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cat.All())
}

func (h *PlantCtrl) Get(c echo.Context) error {
	id := c.Param("id")
	p, ok := h.cat.Find(id, id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]any{"error": "not found"})
	}
	return c.JSON(http.StatusOK, p)
}

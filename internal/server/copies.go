package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/audit"
	"github.com/okhotnikov/libman/internal/models"
)

type CopyHandler struct {
	DB    *gorm.DB
	Audit *audit.Recorder
}

func (h *CopyHandler) List(c echo.Context) error {
	var copies []models.BookCopy
	if err := h.DB.Preload("Book").Find(&copies).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *CopyHandler) Create(c echo.Context) error {
	var copy models.BookCopy
	if err := c.Bind(&copy); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if copy.BookID == 0 || copy.Barcode == "" {
		return c.JSON(http.StatusBadRequest, map[string][]string{
			"barcode": {"book_id and barcode are required"},
		})
	}
	copy.Available = true
	if err := h.DB.Create(&copy).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "barcode already exists")
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "copy_created", copy.Barcode)
	return c.JSON(http.StatusOK, copy)
}

func (h *CopyHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var copy models.BookCopy
	if err := h.DB.First(&copy, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "copy not found")
	}
	if err := c.Bind(&copy); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	copy.ID = uint(id)
	if err := h.DB.Save(&copy).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "copy_updated", copy.Barcode)
	return c.JSON(http.StatusOK, copy)
}

func (h *CopyHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.DB.Delete(&models.BookCopy{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "copy_deleted", fmt.Sprint(id))
	return c.NoContent(http.StatusNoContent)
}

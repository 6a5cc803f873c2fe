package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/models"
)

type LogHandler struct {
	DB *gorm.DB
}

func (h *LogHandler) List(c echo.Context) error {
	var logs []models.ActivityLog
	if err := h.DB.Order("created_at desc").Limit(500).Find(&logs).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, logs)
}

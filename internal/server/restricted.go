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

type RestrictedHandler struct {
	DB    *gorm.DB
	Audit *audit.Recorder
}

func (h *RestrictedHandler) List(c echo.Context) error {
	var grants []models.RestrictedBookGrant
	if err := h.DB.Preload("Book").Preload("User").Find(&grants).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, grants)
}

func (h *RestrictedHandler) Grant(c echo.Context) error {
	var req struct {
		BookID uint `json:"book_id"`
		UserID uint `json:"user_id"`
	}
	if err := c.Bind(&req); err != nil || req.BookID == 0 || req.UserID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "book_id and user_id are required")
	}

	var book models.Book
	if err := h.DB.First(&book, req.BookID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "book not found")
	}
	if !book.Restricted {
		return echo.NewHTTPError(http.StatusBadRequest, "book is not restricted")
	}

	grant := models.RestrictedBookGrant{BookID: req.BookID, UserID: req.UserID}
	if err := h.DB.Create(&grant).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "restricted_grant_created", fmt.Sprint(grant.ID))
	return c.JSON(http.StatusOK, grant)
}

func (h *RestrictedHandler) Revoke(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.DB.Delete(&models.RestrictedBookGrant{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "restricted_grant_revoked", fmt.Sprint(id))
	return c.NoContent(http.StatusNoContent)
}

package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/audit"
	"github.com/okhotnikov/libman/internal/models"
)

type LoanHandler struct {
	DB    *gorm.DB
	Audit *audit.Recorder
}

func (h *LoanHandler) List(c echo.Context) error {
	var loans []models.Loan
	if err := h.DB.Preload("Copy").Preload("Copy.Book").Preload("User").Find(&loans).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) Issue(c echo.Context) error {
	var req struct {
		CopyID uint   `json:"copy_id"`
		UserID uint   `json:"user_id"`
		DueAt  string `json:"due_at"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	dueAt, err := time.Parse(time.RFC3339, req.DueAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string][]string{"due_at": {"must be an RFC3339 timestamp"}})
	}

	var copy models.BookCopy
	if err := h.DB.First(&copy, req.CopyID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "copy not found")
	}
	if !copy.Available {
		return echo.NewHTTPError(http.StatusConflict, "copy is already on loan")
	}

	loan := models.Loan{
		CopyID:   req.CopyID,
		UserID:   req.UserID,
		IssuedAt: time.Now().UTC(),
		DueAt:    dueAt,
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&loan).Error; err != nil {
			return err
		}
		return tx.Model(&copy).Update("available", false).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.Audit.Record(c.Request().Context(), currentUserID(c), "loan_issued", fmt.Sprint(loan.ID))
	return c.JSON(http.StatusOK, loan)
}

func (h *LoanHandler) Return(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var loan models.Loan
	if err := h.DB.First(&loan, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "loan not found")
	}
	if loan.ReturnedAt != nil {
		return echo.NewHTTPError(http.StatusConflict, "loan already returned")
	}

	now := time.Now().UTC()
	loan.ReturnedAt = &now
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&loan).Error; err != nil {
			return err
		}
		return tx.Model(&models.BookCopy{}).Where("id = ?", loan.CopyID).Update("available", true).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.Audit.Record(c.Request().Context(), currentUserID(c), "loan_returned", fmt.Sprint(loan.ID))
	return c.JSON(http.StatusOK, loan)
}

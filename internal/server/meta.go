package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// The flat lookup tables (categories, languages, shelving locations) share
// one contract, so their handlers are built from these CRUD helpers
// parameterized on the model.

func listOf[T any](db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var items []T
		if err := db.Find(&items).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}
}

func createOf[T any](db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var item T
		if err := c.Bind(&item); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := db.Create(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, item)
	}
}

func updateOf[T any](db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
		}
		var item T
		if err := db.First(&item, id).Error; err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		}
		if err := c.Bind(&item); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		// The path ID owns the row. Bind may have rewritten the primary key
		// from the body, so the update is keyed explicitly and never writes
		// the id column.
		if err := db.Model(new(T)).Where("id = ?", id).Select("*").Omit("id").Updates(&item).Error; err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		var updated T
		if err := db.First(&updated, id).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteOf[T any](db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
		}
		var item T
		if err := db.Delete(&item, id).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.NoContent(http.StatusNoContent)
	}
}

package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/audit"
	"github.com/okhotnikov/libman/internal/logging"
	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/search"
)

type BookHandler struct {
	DB      *gorm.DB
	Audit   *audit.Recorder
	ES      *elasticsearch.Client
	ESIndex string
}

func (h *BookHandler) List(c echo.Context) error {
	var books []models.Book
	if err := h.DB.Preload("Category").Preload("Language").Preload("Location").Find(&books).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *BookHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var book models.Book
	if err := h.DB.Preload("Category").Preload("Language").Preload("Location").First(&book, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "book not found")
	}
	return c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Create(c echo.Context) error {
	var book models.Book
	if err := c.Bind(&book); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if book.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string][]string{"title": {"this field is required"}})
	}
	if err := h.DB.Create(&book).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.index(c, book)
	h.Audit.Record(c.Request().Context(), currentUserID(c), "book_created", book.Title)
	return c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var book models.Book
	if err := h.DB.First(&book, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err := c.Bind(&book); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	book.ID = uint(id)
	if err := h.DB.Save(&book).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.index(c, book)
	h.Audit.Record(c.Request().Context(), currentUserID(c), "book_updated", book.Title)
	return c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.DB.Delete(&models.Book{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := search.DeleteBook(c.Request().Context(), h.ES, h.ESIndex, uint(id)); err != nil {
		logging.FromContext(c.Request().Context()).Warn("remove book from index", "err", err)
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "book_deleted", fmt.Sprint(id))
	return c.NoContent(http.StatusNoContent)
}

func (h *BookHandler) ListCopies(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var copies []models.BookCopy
	if err := h.DB.Where("book_id = ?", id).Find(&copies).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, copies)
}

func (h *BookHandler) index(c echo.Context, book models.Book) {
	if err := search.IndexBook(c.Request().Context(), h.ES, h.ESIndex, book); err != nil {
		logging.FromContext(c.Request().Context()).Warn("index book", "err", err)
	}
}

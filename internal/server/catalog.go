package server

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/search"
	"github.com/okhotnikov/libman/internal/util"
)

// CatalogHandler serves the public, unauthenticated catalog. Restricted
// titles never appear here. Search runs on Elasticsearch when configured and
// falls back to the database otherwise.
type CatalogHandler struct {
	DB      *gorm.DB
	ES      *elasticsearch.Client
	ESIndex string
}

func (h *CatalogHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, limit := util.Calculate(page, size)

	ctx := c.Request().Context()

	if h.ES != nil && q != "" {
		total, books, err := search.Books(ctx, h.ES, h.ESIndex, q, from, limit)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "search unavailable")
		}
		return c.JSON(http.StatusOK, echo.Map{"total": total, "books": books})
	}

	query := h.DB.WithContext(ctx).Model(&models.Book{}).Where("restricted = ?", false)
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("title LIKE ? OR author LIKE ? OR isbn LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	var books []models.Book
	if err := query.Offset(from).Limit(limit).Find(&books).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "books": books})
}

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

type RoleHandler struct {
	DB    *gorm.DB
	Audit *audit.Recorder
}

func (h *RoleHandler) List(c echo.Context) error {
	var roles []models.Role
	if err := h.DB.Preload("Permissions").Find(&roles).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var role models.Role
	if err := h.DB.Preload("Permissions").First(&role, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "role not found")
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Create(c echo.Context) error {
	var role models.Role
	if err := c.Bind(&role); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if role.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string][]string{"name": {"this field is required"}})
	}
	if err := h.DB.Create(&role).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "role already exists")
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "role_created", role.Name)
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var role models.Role
	if err := h.DB.First(&role, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "role not found")
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	role.Name = req.Name
	if err := h.DB.Save(&role).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "role_updated", role.Name)
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.DB.Delete(&models.Role{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "role_deleted", fmt.Sprint(id))
	return c.NoContent(http.StatusNoContent)
}

// SetPermissions replaces the role's permission set. PUT on the nested
// resource is the single supported contract.
func (h *RoleHandler) SetPermissions(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var role models.Role
	if err := h.DB.First(&role, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "role not found")
	}

	var req struct {
		PermissionIDs []uint `json:"permission_ids"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var perms []models.Permission
	if len(req.PermissionIDs) > 0 {
		if err := h.DB.Find(&perms, req.PermissionIDs).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if len(perms) != len(req.PermissionIDs) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown permission id")
		}
	}
	if err := h.DB.Model(&role).Association("Permissions").Replace(perms); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.DB.Preload("Permissions").First(&role, role.ID)
	h.Audit.Record(c.Request().Context(), currentUserID(c), "role_permissions_updated", role.Name)
	return c.JSON(http.StatusOK, role)
}

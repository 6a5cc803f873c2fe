package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/audit"
	"github.com/okhotnikov/libman/internal/hash"
	"github.com/okhotnikov/libman/internal/models"
)

type UserHandler struct {
	DB    *gorm.DB
	Audit *audit.Recorder
}

type userRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
	Status   string `json:"status"`
}

func (r userRequest) validate(requirePassword bool) map[string][]string {
	fields := map[string][]string{}
	if r.Username == "" {
		fields["username"] = []string{"this field is required"}
	}
	if r.Email == "" {
		fields["email"] = []string{"this field is required"}
	}
	if requirePassword && r.Password == "" {
		fields["password"] = []string{"this field is required"}
	}
	if r.RoleID == 0 {
		fields["role_id"] = []string{"this field is required"}
	}
	return fields
}

func (h *UserHandler) List(c echo.Context) error {
	var users []models.User
	if err := h.DB.Preload("Role").Find(&users).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var user models.User
	if err := h.DB.Preload("Role").First(&user, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if fields := req.validate(true); len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, fields)
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not hash password")
	}
	status := req.Status
	if status == "" {
		status = "active"
	}
	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		RoleID:       req.RoleID,
		Status:       status,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user already exists")
	}
	h.DB.Preload("Role").First(&user, user.ID)

	h.Audit.Record(c.Request().Context(), currentUserID(c), "user_created", user.Username)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if fields := req.validate(false); len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, fields)
	}

	user.Username = req.Username
	user.Email = req.Email
	user.FullName = req.FullName
	user.RoleID = req.RoleID
	if req.Status != "" {
		user.Status = req.Status
	}
	if req.Password != "" {
		passwordHash, err := hash.HashPassword(req.Password)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not hash password")
		}
		user.PasswordHash = passwordHash
	}
	if err := h.DB.Save(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.DB.Preload("Role").First(&user, user.ID)

	h.Audit.Record(c.Request().Context(), currentUserID(c), "user_updated", user.Username)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.DB.Delete(&models.User{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.Audit.Record(c.Request().Context(), currentUserID(c), "user_deleted", fmt.Sprint(id))
	return c.NoContent(http.StatusNoContent)
}

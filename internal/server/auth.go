package server

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/audit"
	"github.com/okhotnikov/libman/internal/hash"
	"github.com/okhotnikov/libman/internal/models"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret []byte
	TokenTTL  time.Duration
	Audit     *audit.Recorder
}

// Token implements POST /api/token: form-encoded credentials in, bearer token
// plus the profile snapshot out.
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	fields := map[string][]string{}
	if username == "" {
		fields["username"] = []string{"this field is required"}
	}
	if password == "" {
		fields["password"] = []string{"this field is required"}
	}
	if len(fields) > 0 {
		return c.JSON(http.StatusBadRequest, fields)
	}

	var user models.User
	if err := h.DB.Preload("Role").Where("username = ?", username).First(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}
	if user.Status != "active" {
		return echo.NewHTTPError(http.StatusUnauthorized, "account is disabled")
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role.Name,
		"exp":  time.Now().Add(h.TokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.JWTSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not sign token")
	}

	h.Audit.Record(c.Request().Context(), user.ID, "user_logged_in", user.Username)

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": signed,
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"full_name":    user.FullName,
		"status":       user.Status,
		"role":         user.Role,
	})
}

// Me implements GET /api/users/me/ (the trailing slash is part of the
// contract with the client).
func (h *AuthHandler) Me(c echo.Context) error {
	var user models.User
	if err := h.DB.Preload("Role").First(&user, currentUserID(c)).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	return c.JSON(http.StatusOK, user)
}

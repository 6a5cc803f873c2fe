// Package servertest spins up the full REST backend on an in-memory database
// for tests in other packages.
package servertest

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/audit"
	"github.com/okhotnikov/libman/internal/hash"
	"github.com/okhotnikov/libman/internal/models"
	"github.com/okhotnikov/libman/internal/server"
)

const (
	JWTSecret      = "test-secret"
	AdminUser      = "alice"
	AdminPassword  = "correct"
	MemberUser     = "bob"
	MemberPassword = "memberpass"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Role{}, &models.Permission{}, &models.User{},
		&models.Category{}, &models.Language{}, &models.Location{},
		&models.Book{}, &models.BookCopy{}, &models.Loan{},
		&models.RestrictedBookGrant{}, &models.ActivityLog{},
	); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	adminRole := models.Role{Name: "Admin"}
	memberRole := models.Role{Name: "Member"}
	if err := db.Create(&adminRole).Error; err != nil {
		t.Fatalf("seed admin role: %v", err)
	}
	if err := db.Create(&memberRole).Error; err != nil {
		t.Fatalf("seed member role: %v", err)
	}

	adminHash, _ := hash.HashPassword(AdminPassword)
	memberHash, _ := hash.HashPassword(MemberPassword)
	users := []models.User{
		{Username: AdminUser, Email: "alice@example.com", FullName: "Alice Admin",
			PasswordHash: adminHash, Status: "active", RoleID: adminRole.ID},
		{Username: MemberUser, Email: "bob@example.com", FullName: "Bob Member",
			PasswordHash: memberHash, Status: "active", RoleID: memberRole.ID},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
}

// Start returns a running backend seeded with an Admin and a Member user,
// plus the database behind it for direct assertions.
func Start(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	db := openDB(t)
	seed(t, db)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := &audit.Recorder{DB: db, Producer: audit.NewProducer(nil, ""), Log: logger}
	secret := []byte(JWTSecret)

	e := echo.New()
	e.Use(server.ContextLogger(logger))
	server.Register(e, &server.Deps{
		DB:         db,
		JWTSecret:  secret,
		Auth:       &server.AuthHandler{DB: db, JWTSecret: secret, TokenTTL: 15 * time.Minute, Audit: recorder},
		Books:      &server.BookHandler{DB: db, Audit: recorder},
		Copies:     &server.CopyHandler{DB: db, Audit: recorder},
		Loans:      &server.LoanHandler{DB: db, Audit: recorder},
		Users:      &server.UserHandler{DB: db, Audit: recorder},
		Roles:      &server.RoleHandler{DB: db, Audit: recorder},
		Logs:       &server.LogHandler{DB: db},
		Restricted: &server.RestrictedHandler{DB: db, Audit: recorder},
		Catalog:    &server.CatalogHandler{DB: db},
	})

	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return ts, db
}

package server

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/okhotnikov/libman/internal/models"
)

type Deps struct {
	DB         *gorm.DB
	JWTSecret  []byte
	Auth       *AuthHandler
	Books      *BookHandler
	Copies     *CopyHandler
	Loans      *LoanHandler
	Users      *UserHandler
	Roles      *RoleHandler
	Logs       *LogHandler
	Restricted *RestrictedHandler
	Catalog    *CatalogHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")

	// public
	api.POST("/token", d.Auth.Token)
	api.GET("/catalog", d.Catalog.Search)

	// any authenticated staff member
	authed := api.Group("", RequireAuth(d.JWTSecret))
	authed.GET("/users/me/", d.Auth.Me)

	authed.GET("/books", d.Books.List)
	authed.GET("/books/:id", d.Books.Get)
	authed.GET("/books/:id/copies", d.Books.ListCopies)
	authed.POST("/books", d.Books.Create)
	authed.PUT("/books/:id", d.Books.Update)

	authed.GET("/copies", d.Copies.List)
	authed.POST("/copies", d.Copies.Create)
	authed.PUT("/copies/:id", d.Copies.Update)
	authed.DELETE("/copies/:id", d.Copies.Delete)

	authed.GET("/loans", d.Loans.List)
	authed.POST("/loans", d.Loans.Issue)
	authed.POST("/loans/:id/return", d.Loans.Return)

	authed.GET("/categories", listOf[models.Category](d.DB))
	authed.GET("/languages", listOf[models.Language](d.DB))
	authed.GET("/locations", listOf[models.Location](d.DB))
	authed.GET("/permissions", listOf[models.Permission](d.DB))
	authed.GET("/roles", d.Roles.List)
	authed.GET("/roles/:id", d.Roles.Get)
	authed.GET("/users", d.Users.List)
	authed.GET("/users/:id", d.Users.Get)

	// administration
	admin := authed.Group("", RequireRole("Admin"))

	admin.DELETE("/books/:id", d.Books.Delete)

	admin.POST("/users", d.Users.Create)
	admin.PUT("/users/:id", d.Users.Update)
	admin.DELETE("/users/:id", d.Users.Delete)

	admin.POST("/roles", d.Roles.Create)
	admin.PUT("/roles/:id", d.Roles.Update)
	admin.DELETE("/roles/:id", d.Roles.Delete)
	admin.PUT("/roles/:id/permissions", d.Roles.SetPermissions)

	admin.POST("/permissions", createOf[models.Permission](d.DB))
	admin.PUT("/permissions/:id", updateOf[models.Permission](d.DB))
	admin.DELETE("/permissions/:id", deleteOf[models.Permission](d.DB))

	admin.POST("/categories", createOf[models.Category](d.DB))
	admin.PUT("/categories/:id", updateOf[models.Category](d.DB))
	admin.DELETE("/categories/:id", deleteOf[models.Category](d.DB))

	admin.POST("/languages", createOf[models.Language](d.DB))
	admin.PUT("/languages/:id", updateOf[models.Language](d.DB))
	admin.DELETE("/languages/:id", deleteOf[models.Language](d.DB))

	admin.POST("/locations", createOf[models.Location](d.DB))
	admin.PUT("/locations/:id", updateOf[models.Location](d.DB))
	admin.DELETE("/locations/:id", deleteOf[models.Location](d.DB))

	admin.GET("/logs", d.Logs.List)

	admin.GET("/restricted-books", d.Restricted.List)
	admin.POST("/restricted-books", d.Restricted.Grant)
	admin.DELETE("/restricted-books/:id", d.Restricted.Revoke)
}

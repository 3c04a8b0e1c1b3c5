// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "klubku_backend/internals/middlewares/auth"
	routeDetails "klubku_backend/internals/route/details"

	"klubku_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// 🔓 Kiosk publik: trust model PIN, tanpa JWT, rate limit ketat
	public := app.Group("/public", middlewares.KioskRateLimiter())
	routeDetails.KioskRoutes(public, db)

	// 🔐 API admin/instruktur: wajib JWT (scoping klub dari token)
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))
	routeDetails.ClubRoutes(api, db)
}

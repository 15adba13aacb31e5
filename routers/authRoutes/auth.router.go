package authRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paydesk/config"
	authController "paydesk/controllers/auth"
	"paydesk/middleware"
	authValidator "paydesk/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller, db *gorm.DB, cfg *config.Config) {
	app.Get("/", ctrl.Health)

	api := app.Group("/api")
	api.Get("/health", ctrl.Health)
	api.Post("/login", authValidator.Login(), ctrl.Login)
	api.Get("/me", middleware.RequireAuth(db, cfg), ctrl.Me)
}

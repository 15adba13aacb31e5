package queueRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paydesk/config"
	queueController "paydesk/controllers/queue"
	"paydesk/middleware"
	queueValidator "paydesk/validators/queue"
)

func SetupQueueRoutes(app *fiber.App, ctrl *queueController.Controller, db *gorm.DB, cfg *config.Config) {
	auth := middleware.RequireAuth(db, cfg)

	api := app.Group("/api")
	api.Get("/stats", auth, ctrl.Stats)
	api.Get("/transactions", auth, queueValidator.List(), ctrl.List)
	api.Post("/transactions/:id/approve", auth, middleware.RequireAdmin(), ctrl.Approve)
	api.Post("/transactions/:id/decline", auth, middleware.RequireAdmin(), ctrl.Decline)
}

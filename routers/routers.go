package routers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"paydesk/apperr"
	"paydesk/config"
	authController "paydesk/controllers/auth"
	queueController "paydesk/controllers/queue"
	"paydesk/notifier"
	authRoutes "paydesk/routers/authRoutes"
	queueRoutes "paydesk/routers/queueRoutes"
)

// ErrorHandler is the single place a typed error becomes an HTTP status.
// Anything outside the taxonomy (store failures included) maps to 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Kind.HTTPStatus()).JSON(fiber.Map{"error": appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// NewApp builds the fiber application with the shared error mapping, CORS
// policy and request logging.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigin,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Authorization,Content-Type",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	return app
}

// Setup wires every route onto app.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	auth := authController.New(db, cfg)
	queue := queueController.New(db, notifier.New())

	authRoutes.SetupAuthRoutes(app, auth, db, cfg)
	queueRoutes.SetupQueueRoutes(app, queue, db, cfg)

	// Fallback for anything unrouted
	app.Use(func(c *fiber.Ctx) error {
		return apperr.ErrNotFound()
	})
}

package middleware

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"paydesk/apperr"
	"paydesk/config"
	"paydesk/models"
)

const principalKey = "principal"

// EnvAdmin is the synthetic Principal for the configured fallback admin.
func EnvAdmin(cfg *config.Config) models.Principal {
	return models.Principal{
		ID:    models.EnvAdminID,
		Name:  "Admin",
		Email: cfg.AdminEmail,
		Role:  models.RoleAdmin,
	}
}

// RequireAuth resolves the bearer credential into a Principal and stores it
// in the request locals. The admin shared secret short-circuits before any
// store access, so the fallback admin keeps working when the database is
// unreachable. Read-only: no session state is touched.
func RequireAuth(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			return apperr.ErrUnauthenticated()
		}

		token := strings.TrimSpace(authHeader[len("Bearer "):])
		if token == "" {
			return apperr.ErrUnauthenticated()
		}

		// Legacy admin path, bypasses the store entirely
		if cfg.AdminAPIKey != "" &&
			subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminAPIKey)) == 1 {
			c.Locals(principalKey, EnvAdmin(cfg))
			return c.Next()
		}

		var principal models.Principal
		err := db.Table("sessions").
			Select("users.id, users.name, users.email, users.role").
			Joins("join users on users.id = sessions.user_id").
			Where("sessions.token = ? AND sessions.expires_at > ?", token, time.Now()).
			Take(&principal).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrUnauthenticated()
			}
			return err
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// RequireAdmin gates queue mutations to admin principals. Must run after
// RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return apperr.ErrUnauthenticated()
		}
		if !principal.IsAdmin() {
			return apperr.ErrForbidden()
		}
		return c.Next()
	}
}

// GetPrincipal returns the Principal resolved by RequireAuth.
func GetPrincipal(c *fiber.Ctx) (models.Principal, bool) {
	principal, ok := c.Locals(principalKey).(models.Principal)
	return principal, ok
}

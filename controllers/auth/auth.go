package authController

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"paydesk/apperr"
	"paydesk/config"
	"paydesk/middleware"
	"paydesk/models"
	authValidator "paydesk/validators/auth"
)

// sessionValidity is the lifetime of a freshly minted session.
const sessionValidity = 7 * 24 * time.Hour

type Controller struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(db *gorm.DB, cfg *config.Config) *Controller {
	return &Controller{DB: db, Cfg: cfg}
}

// Health reports liveness. Public, no auth.
func (ctrl *Controller) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

// Login authenticates against the users table first and falls back to the
// statically configured admin, so the break-glass admin keeps working even
// when the store is empty. A matched user gets a 7-day session; the
// fallback admin gets the static shared secret and no session row.
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if reqData == nil {
		reqData = &authValidator.LoginRequest{}
	}

	var user models.User
	err := ctrl.DB.Where("email = ?", reqData.Email).First(&user).Error
	switch {
	case err == nil:
		// A known email never falls through to the env admin.
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)) != nil {
			return apperr.ErrInvalidCredentials()
		}

		session := models.Session{
			Token:     uuid.NewString(),
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(sessionValidity),
		}
		if err := ctrl.DB.Create(&session).Error; err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"token": session.Token,
			"user":  models.PublicUser(user),
		})

	case errors.Is(err, gorm.ErrRecordNotFound):
		if ctrl.matchesEnvAdmin(reqData.Email, reqData.Password) {
			return c.JSON(fiber.Map{
				"token": ctrl.Cfg.AdminAPIKey,
				"user":  middleware.EnvAdmin(ctrl.Cfg),
			})
		}
		return apperr.ErrInvalidCredentials()

	default:
		return err
	}
}

// Me returns the Principal resolved for the caller's credential.
func (ctrl *Controller) Me(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return apperr.ErrUnauthenticated()
	}
	return c.JSON(principal)
}

// matchesEnvAdmin compares against the configured fallback credentials in
// constant time. Empty configured credentials never match.
func (ctrl *Controller) matchesEnvAdmin(email, password string) bool {
	if ctrl.Cfg.AdminEmail == "" || ctrl.Cfg.AdminPassword == "" {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(ctrl.Cfg.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(ctrl.Cfg.AdminPassword)) == 1
	return emailOK && passwordOK
}

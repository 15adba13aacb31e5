package authValidator

import (
	"github.com/gofiber/fiber/v2"
)

// LoginRequest is the parsed login body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login parses the login body. A malformed body degrades to empty
// credentials so the handler answers with the same 401 a wrong password
// gets, instead of leaking a parse error.
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			*reqData = LoginRequest{}
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

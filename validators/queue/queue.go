package queueValidator

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultLimit applies when limit is omitted or not a positive number.
	DefaultLimit = 50
	// MaxLimit is a hard server-side cap on page size, not advisory.
	MaxLimit = 200
)

// ListQuery carries the clamped pagination and filter parameters for the
// transaction list.
type ListQuery struct {
	Limit        int
	Offset       int
	HideEmptyUTR bool
}

// List parses and clamps the transaction list query parameters.
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := &ListQuery{
			Limit:        c.QueryInt("limit", DefaultLimit),
			Offset:       c.QueryInt("offset", 0),
			HideEmptyUTR: c.Query("hideEmptyUtr", "false") == "true",
		}

		if q.Limit <= 0 {
			q.Limit = DefaultLimit
		}
		if q.Limit > MaxLimit {
			q.Limit = MaxLimit
		}
		if q.Offset < 0 {
			q.Offset = 0
		}

		c.Locals("validatedListQuery", q)
		return c.Next()
	}
}

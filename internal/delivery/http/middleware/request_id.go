package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// HeaderRequestID is echoed back on every response.
const HeaderRequestID = "X-Request-ID"

// NewRequestID tags each request with a UUID, honoring one supplied by the
// caller.
func NewRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(requestIDKey, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	}
}

// RequestID returns the id assigned to the current request, if any.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

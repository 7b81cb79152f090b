package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the generated request ID.
const HeaderName = "X-Ray-Id"

// New returns a middleware that assigns a unique RayID to every request.
// The ID is stored in locals under "ray_id" and echoed in the response
// header so clients can reference it when reporting problems.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}

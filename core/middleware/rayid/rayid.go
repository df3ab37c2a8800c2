package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request's ray id.
const HeaderName = "X-Ray-Id"

// New creates a middleware that assigns every request a ray id. An
// incoming X-Ray-Id header is honored so ids propagate across services;
// otherwise a fresh UUID is generated. The id is stored in Locals for
// logger.WithRayID and echoed in the response header.
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

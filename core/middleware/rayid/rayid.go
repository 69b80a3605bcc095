package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRayID is the response header echoing the request id.
const HeaderRayID = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key holding the request id.
const LocalsKey = "ray_id"

// New returns a middleware assigning every request a RayID. An incoming
// X-Ray-ID header is reused so callers can correlate across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRayID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderRayID, id)
		return c.Next()
	}
}

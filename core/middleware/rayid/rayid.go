package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Local is the fiber locals key the ray id is stored under.
const Local = "ray_id"

// Header is the response header carrying the ray id.
const Header = "X-Ray-ID"

// New returns a middleware that tags every request with a ray id.
// The id lands in the request locals and in the response headers so
// logs and clients can correlate a request.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := uuid.NewString()
		c.Locals(Local, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type corsGlobalMiddleware struct {
	allowOrigins []string
	allowHeaders string
	allowMethods []string
	maxAge       string
}

func NewCORSGlobalMiddleware(
	allowOrigins []string,
	allowHeaders string,
	allowMethods []string,
	maxAge string,
) Middleware {
	return &corsGlobalMiddleware{
		allowOrigins: allowOrigins,
		allowHeaders: allowHeaders,
		allowMethods: allowMethods,
		maxAge:       maxAge,
	}
}

// Middleware answers preflights with an empty 200 and stamps the CORS headers
// on every response, so browser callers also see error bodies.
func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		switch {
		case hasStar(m.allowOrigins):
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		case origin != "" && m.allowed(origin):
			c.Set(fiber.HeaderVary, fiber.HeaderOrigin)
			c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		default:
			return c.Next()
		}
		c.Set(fiber.HeaderAccessControlAllowHeaders, m.allowHeaders)

		if c.Method() == fiber.MethodOptions {
			if len(m.allowMethods) > 0 {
				c.Set(fiber.HeaderAccessControlAllowMethods, strings.Join(m.allowMethods, ", "))
			}
			if m.maxAge != "" {
				c.Set(fiber.HeaderAccessControlMaxAge, m.maxAge)
			}
			c.Status(fiber.StatusOK)
			return nil
		}
		return c.Next()
	}
}

func (m *corsGlobalMiddleware) allowed(origin string) bool {
	for _, o := range m.allowOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}

package web

import (
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	headerControllerToken = "X-Controller-Token"
	headerCaptainID       = "X-Captain-ID"
)

// LoggingMiddleware logs every request with latency and status.
func LoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		slog.Info("request",
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("latency", time.Since(start)),
			slog.String("ip", c.IP()))
		return err
	}
}

// RequireController guards host-only operations behind the shared
// controller token.
func RequireController(token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token == "" {
			return SendForbidden(c, "controller access is not configured")
		}
		got := c.Get(headerControllerToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			slog.Warn("controller auth rejected",
				slog.String("type", "http"),
				slog.String("path", c.Path()),
				slog.String("ip", c.IP()))
			return SendUnauthorized(c, "controller token required")
		}
		return c.Next()
	}
}

// CallerIdentity captures who is making the request: the controller,
// a captain, or nobody in particular.
type CallerIdentity struct {
	IsController bool
	CaptainID    string
}

// Identify stores the caller identity in the request context so
// handlers can authorize per resource.
func Identify(controllerToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := CallerIdentity{CaptainID: c.Get(headerCaptainID)}
		if controllerToken != "" {
			got := c.Get(headerControllerToken)
			id.IsController = subtle.ConstantTimeCompare([]byte(got), []byte(controllerToken)) == 1
		}
		c.Locals("caller", id)
		return c.Next()
	}
}

// Caller extracts the identity stored by Identify.
func Caller(c *fiber.Ctx) CallerIdentity {
	if id, ok := c.Locals("caller").(CallerIdentity); ok {
		return id
	}
	return CallerIdentity{}
}

package middleware

import (
	"parts-analyzer/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id and a request-scoped logger.
func RequestID(base *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals("requestID", id)
		c.SetUserContext(logger.WithContext(c.UserContext(), base.With(zap.String("request_id", id))))
		return c.Next()
	}
}

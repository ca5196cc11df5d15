package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"tolleasy-service/src/pkg/log"
)

const slowRequestBudget = time.Second

// NewLogger logs every request with latency; requests over the budget are
// flagged separately.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		elapsed := time.Since(start)

		logger := log.GetLogger()
		meta := fmt.Sprintf("status=%d latency=%s ip=%s", ctx.Response().StatusCode(), elapsed, ctx.IP())
		message := fmt.Sprintf("%s %s", ctx.Method(), ctx.Path())
		if elapsed > slowRequestBudget {
			logger.Slow("http", message, "request", meta)
		} else {
			logger.Info("http", message, "request", meta)
		}
		return err
	}
}

package middleware

import (
	"errors"
	"log/slog"
	"time"

	"github.com/cinelog/movie-api/internal/apperr"
	"github.com/cinelog/movie-api/internal/config"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the single exception-to-status mapper: every error a
// handler returns funnels through here and comes out as a problem body.
// Detail is only exposed in development.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		traceID, _ := c.Locals("requestid").(string)

		// Framework-level errors (unknown route, method not allowed)
		// keep fiber's status.
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(apperr.Problem{
				Status:    fe.Code,
				Title:     fe.Message,
				Type:      "http_error",
				Instance:  c.Path(),
				TraceID:   traceID,
				Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			})
		}

		problem := apperr.NewProblem(err, c.Path(), traceID, cfg.IsDevelopment())
		if problem.Status >= 500 {
			slog.Error("unhandled server error",
				"method", c.Method(), "path", c.Path(),
				"error", err.Error(), "trace_id", traceID)
		}
		return c.Status(problem.Status).JSON(problem)
	}
}

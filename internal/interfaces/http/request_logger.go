package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/partner-portal/internal/infrastructure/metrics"
	"github.com/jhoicas/partner-portal/pkg/logger"
)

// RequestLogger registra cada petición (método, ruta, status, latencia, request id) y
// alimenta las métricas HTTP. /metrics y /healthz se loguean en Debug.
func RequestLogger(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// El ErrorHandler escribe el status; se invoca aquí para loguear el código final.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		latency := time.Since(start)
		status := c.Response().StatusCode()
		path := utils.CopyString(c.Path())
		method := utils.CopyString(c.Method())

		m.ObserveRequest(method, path, status, latency)

		ev := log.Info()
		switch {
		case path == "/metrics" || path == "/healthz":
			ev = log.Debug()
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest && status != fiber.StatusNotFound:
			ev = log.Warn()
		}
		ev.Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("latency", latency).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return nil
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/partner-portal/internal/application/guard"
	"github.com/jhoicas/partner-portal/internal/infrastructure/metrics"
)

// GuardMiddleware aplica el route guard antes de componer la vista. Decide solo con la
// presencia de credencial (sin llamada de red); una credencial rechazada por el backend
// se resuelve después en el handler de vistas. Debe usarse DESPUÉS de CredentialMiddleware.
//
// Comportamiento:
//   - ruta de auth con credencial → 302 a la landing autenticada.
//   - ruta protegida sin credencial → 302 a login.
//   - resto → continúa.
func GuardMiddleware(routes guard.Routes, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := routes.Classify(c.Path())
		d := routes.Decide(GetCredential(c) != "", kind)
		if d.Outcome == guard.Redirect {
			m.GuardDecision(kind.String(), "redirect")
			return c.Redirect(d.RedirectTo, fiber.StatusFound)
		}
		m.GuardDecision(kind.String(), "allow")
		return c.Next()
	}
}

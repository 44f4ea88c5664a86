package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/partner-portal/internal/application/dto"
	"github.com/jhoicas/partner-portal/internal/application/session"
	"github.com/jhoicas/partner-portal/internal/application/usecase"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/infrastructure/metrics"
	"github.com/jhoicas/partner-portal/pkg/logger"
)

// unknownActionLabel agrupa en una sola serie los nombres fuera de la lista blanca.
const unknownActionLabel = "unknown"

// ActionHandler expone POST /actions/:action.
type ActionHandler struct {
	actions  *usecase.ActionService
	resolver *session.Resolver
	cookie   CookieConfig
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewActionHandler construye el handler.
func NewActionHandler(actions *usecase.ActionService, resolver *session.Resolver, cookie CookieConfig, m *metrics.Metrics, log *logger.Logger) *ActionHandler {
	return &ActionHandler{actions: actions, resolver: resolver, cookie: cookie, metrics: m, log: log}
}

// Run valida el nombre contra la lista blanca, resuelve la sesión, aplica el gate y delega la acción al backend.
//
// Respuestas:
//   - 404 acción desconocida, antes de mirar la credencial.
//   - 401 sin credencial o credencial rechazada (la cookie se expira).
//   - 403 UPGRADE_REQUIRED si el plan no alcanza; el backend no se llama.
//   - 503 fallo transitorio del backend.
func (h *ActionHandler) Run(c *fiber.Ctx) error {
	name := utils.CopyString(c.Params("action"))
	if !h.actions.Known(name) {
		h.metrics.ActionRun(unknownActionLabel, domain.KindNotFound.String())
		return writeError(c, usecase.ErrUnknownAction)
	}
	cred := GetCredential(c)

	id, err := h.resolver.Resolve(c.UserContext(), cred)
	if err != nil {
		return h.fail(c, name, cred, err)
	}

	res, err := h.actions.Run(c.UserContext(), name, id, cred, c.Body())
	if err != nil {
		return h.fail(c, name, cred, err)
	}
	h.metrics.ActionRun(name, domain.KindNone.String())
	return c.JSON(dto.ActionResponse{Action: res.Action, Status: res.Status, Result: res.Body})
}

func (h *ActionHandler) fail(c *fiber.Ctx, name, cred string, err error) error {
	kind := domain.KindOf(err)
	h.metrics.ActionRun(name, kind.String())
	switch kind {
	case domain.KindUnauthenticated:
		h.resolver.Invalidate(c.UserContext(), cred)
		clearCredential(c, h.cookie)
	case domain.KindTransient:
		h.log.Warn().Err(err).Str("action", name).Msg("acción fallida")
	}
	return writeError(c, err)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/partner-portal/internal/application/dto"
	"github.com/jhoicas/partner-portal/internal/application/guard"
	"github.com/jhoicas/partner-portal/internal/application/session"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/access"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
	"github.com/jhoicas/partner-portal/internal/infrastructure/metrics"
)

// SessionHandler expone la identidad al shell y el logout.
type SessionHandler struct {
	resolver *session.Resolver
	routes   guard.Routes
	cookie   CookieConfig
	metrics  *metrics.Metrics
}

// NewSessionHandler construye el handler.
func NewSessionHandler(resolver *session.Resolver, routes guard.Routes, cookie CookieConfig, m *metrics.Metrics) *SessionHandler {
	return &SessionHandler{resolver: resolver, routes: routes, cookie: cookie, metrics: m}
}

// Get GET /session. Siempre 200: el estado va en el cuerpo (unauthenticated | pending | authenticated).
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	cred := GetCredential(c)
	if cred == "" {
		return c.JSON(sessionResponse(entity.Unauthenticated()))
	}
	state, err := h.resolver.State(c.UserContext(), cred)
	kind := domain.KindOf(err)
	h.metrics.SessionResolution(kind.String())
	if kind == domain.KindUnauthenticated {
		clearCredential(c, h.cookie)
	}
	return c.JSON(sessionResponse(state))
}

// Logout POST /logout: olvida la sesión cacheada, expira la cookie y vuelve a login.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if cred := GetCredential(c); cred != "" {
		h.resolver.Invalidate(c.UserContext(), cred)
	}
	clearCredential(c, h.cookie)
	return c.Redirect(h.routes.LoginPath, fiber.StatusSeeOther)
}

func sessionResponse(state entity.SessionState) dto.SessionResponse {
	out := dto.SessionResponse{
		Status:       state.Status.String(),
		Capabilities: []string{},
	}
	id := state.Identity
	if state.Status != entity.SessionAuthenticated || id == nil {
		return out
	}
	out.IsAuthenticated = true
	out.IsAdmin = id.IsAdmin
	out.PlanTier = id.PlanTier.String()
	out.ChatQuota = access.ChatQuota(id.PlanTier)
	out.User = &dto.UserDTO{
		ID:       id.UserID,
		Email:    id.Email,
		FullName: id.FullName,
		IsActive: id.IsActive,
	}
	for _, cp := range access.Granted(id) {
		out.Capabilities = append(out.Capabilities, string(cp))
	}
	return out
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/partner-portal/internal/application/composer"
	"github.com/jhoicas/partner-portal/internal/application/demo"
	"github.com/jhoicas/partner-portal/internal/application/dto"
	"github.com/jhoicas/partner-portal/internal/application/guard"
	"github.com/jhoicas/partner-portal/internal/application/session"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
	"github.com/jhoicas/partner-portal/internal/infrastructure/metrics"
	"github.com/jhoicas/partner-portal/pkg/logger"
)

// backendStatus lo implementa *health.Monitor.
type backendStatus interface {
	Online() bool
}

// ViewHandler compone la vista de cualquier ruta de página.
type ViewHandler struct {
	composer *composer.Composer
	resolver *session.Resolver
	routes   guard.Routes
	tenant   entity.TenantConfig
	backend  backendStatus
	cookie   CookieConfig
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewViewHandler construye el handler.
func NewViewHandler(comp *composer.Composer, resolver *session.Resolver, routes guard.Routes, tenant entity.TenantConfig,
	backend backendStatus, cookie CookieConfig, m *metrics.Metrics, log *logger.Logger) *ViewHandler {
	return &ViewHandler{
		composer: comp,
		resolver: resolver,
		routes:   routes,
		tenant:   tenant,
		backend:  backend,
		cookie:   cookie,
		metrics:  m,
		log:      log,
	}
}

// Page GET de una ruta de página: redirección o descriptor de vista JSON.
// La sesión solo se resuelve en rutas protegidas; las públicas no la usan.
func (h *ViewHandler) Page(c *fiber.Ctx) error {
	path := c.Path()
	state := entity.Unauthenticated()

	switch h.routes.Classify(path) {
	case guard.RouteExempt:
		// Prefijo de infraestructura sin handler propio (p. ej. /api sin proxy).
		return fiber.ErrNotFound
	case guard.RouteProtected:
		if cred := GetCredential(c); cred != "" {
			st, err := h.resolver.State(c.UserContext(), cred)
			kind := domain.KindOf(err)
			h.metrics.SessionResolution(kind.String())
			if kind == domain.KindUnauthenticated {
				clearCredential(c, h.cookie)
			}
			state = st
		}
	}

	comp := h.composer.Compose(composer.Input{
		Tenant:        h.tenant,
		Session:       state,
		Route:         path,
		DemoRole:      demo.ParseRole(c.Query("role")),
		BackendOnline: h.backend.Online(),
	})
	if comp.IsRedirect() {
		return c.Redirect(comp.RedirectTo, fiber.StatusFound)
	}

	status := fiber.StatusOK
	if comp.NotFound {
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(dto.ViewResponse{
		Route:   comp.Route,
		Session: state.Status.String(),
		Tenant:  tenantDTO(h.tenant),
		Blocks:  blockDTOs(comp.Blocks),
	})
}

func tenantDTO(t entity.TenantConfig) dto.TenantDTO {
	mods := t.EnabledModules()
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = string(m)
	}
	return dto.TenantDTO{
		ID:          t.ID,
		DisplayName: t.DisplayName,
		Theme: dto.ThemeDTO{
			PrimaryColor:   t.Theme.PrimaryColor,
			SecondaryColor: t.Theme.SecondaryColor,
			AccentColor:    t.Theme.AccentColor,
		},
		Modules: names,
	}
}

func blockDTOs(blocks []composer.Block) []dto.BlockDTO {
	out := make([]dto.BlockDTO, len(blocks))
	for i, b := range blocks {
		out[i] = dto.BlockDTO{ID: b.ID, Slot: b.Slot, Module: string(b.Module), Props: b.Props}
	}
	return out
}

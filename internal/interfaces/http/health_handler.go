package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/partner-portal/internal/application/dto"
	"github.com/jhoicas/partner-portal/internal/application/health"
)

// statusSnapshot lo implementa *health.Monitor.
type statusSnapshot interface {
	Snapshot() health.Status
}

// HealthHandler GET /healthz.
type HealthHandler struct {
	service string
	tenant  string
	monitor statusSnapshot
}

// NewHealthHandler construye el handler.
func NewHealthHandler(service, tenant string, monitor statusSnapshot) *HealthHandler {
	return &HealthHandler{service: service, tenant: tenant, monitor: monitor}
}

// Get responde siempre 200 mientras el proceso viva; status es "degraded" si el backend está caído.
func (h *HealthHandler) Get(c *fiber.Ctx) error {
	st := h.monitor.Snapshot()
	out := dto.HealthResponse{
		Status:        "ok",
		Service:       h.service,
		Tenant:        h.tenant,
		BackendOnline: st.Online,
		LastError:     st.LastError,
	}
	if !st.Online {
		out.Status = "degraded"
	}
	if !st.LastCheck.IsZero() {
		t := st.LastCheck
		out.LastCheck = &t
	}
	return c.JSON(out)
}

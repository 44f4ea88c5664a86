package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/access"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// ErrUnknownAction la acción no está en la lista blanca.
var ErrUnknownAction = fmt.Errorf("action: acción desconocida: %w", domain.ErrNotFound)

// ActionRoute destino en el backend de una acción gateada.
type ActionRoute struct {
	Method     string
	Path       string
	Capability access.Capability
}

// defaultActions lista blanca de acciones que el portal puede delegar.
var defaultActions = map[string]ActionRoute{
	"mining.launch":    {Method: http.MethodPost, Path: "/api/v1/data-mining/launch-query", Capability: access.CapAccessMining},
	"mining.analysis":  {Method: http.MethodPost, Path: "/api/v1/mining/run-analysis", Capability: access.CapAccessMining},
	"content.campaign": {Method: http.MethodPost, Path: "/api/v1/content/new-campaign", Capability: access.CapContentCampaigns},
}

// DeniedError el gate rechazó la acción antes de llamar al backend.
type DeniedError struct {
	Action      string
	Capability  access.Capability
	Requirement access.Requirement
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("action: %s requiere %s", e.Action, e.Capability)
}

// Unwrap permite clasificar con domain.KindOf.
func (e *DeniedError) Unwrap() error { return domain.ErrForbidden }

// ActionResult respuesta del backend para una acción ejecutada.
type ActionResult struct {
	Action string
	Status int
	Body   json.RawMessage
}

// ActionService ejecuta acciones gateadas. El gate local se evalúa siempre antes
// de la llamada; el backend sigue siendo la autoridad final.
type ActionService struct {
	forwarder ports.ActionForwarder
	routes    map[string]ActionRoute
}

// NewActionService construye el servicio con la lista blanca por defecto.
func NewActionService(forwarder ports.ActionForwarder) *ActionService {
	return &ActionService{forwarder: forwarder, routes: defaultActions}
}

// Known indica si name está en la lista blanca de acciones.
func (s *ActionService) Known(name string) bool {
	_, ok := s.routes[name]
	return ok
}

// Actions devuelve los nombres de acciones soportadas, ordenados.
func (s *ActionService) Actions() []string {
	out := make([]string, 0, len(s.routes))
	for name := range s.routes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Run comprueba la capacidad de id y reenvía la acción.
// Errores: ErrUnknownAction, domain.ErrUnauthenticated (sin identidad o 401),
// *DeniedError / domain.ErrForbidden y domain.ErrTransient.
func (s *ActionService) Run(ctx context.Context, action string, id *entity.SessionIdentity, credential string, body []byte) (*ActionResult, error) {
	route, ok := s.routes[action]
	if !ok {
		return nil, ErrUnknownAction
	}
	if id == nil || credential == "" {
		return nil, fmt.Errorf("action: %s sin sesión: %w", action, domain.ErrUnauthenticated)
	}
	if !access.Allows(id, route.Capability) {
		req, _ := access.RequirementFor(route.Capability)
		return nil, &DeniedError{Action: action, Capability: route.Capability, Requirement: req}
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	status, raw, err := s.forwarder.Forward(ctx, route.Method, route.Path, credential, body)
	return &ActionResult{Action: action, Status: status, Body: raw}, err
}

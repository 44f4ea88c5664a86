// Package registry es el registro de módulos: mapea el id de tenant a su tema y módulos habilitados.
package registry

import (
	"fmt"

	"github.com/jhoicas/partner-portal/internal/domain/entity"
	"github.com/jhoicas/partner-portal/pkg/logger"
)

// Registry catálogo inmutable de TenantConfig con un tenant por defecto.
type Registry struct {
	tenants   map[string]entity.TenantConfig
	defaultID string
	log       *logger.Logger
}

// New construye el registro. El tenant por defecto debe existir: es el único error posible
// y se detecta al arrancar, nunca al resolver.
func New(tenants []entity.TenantConfig, defaultID string, log *logger.Logger) (*Registry, error) {
	if log == nil {
		log = logger.Nop()
	}
	r := &Registry{
		tenants:   make(map[string]entity.TenantConfig, len(tenants)),
		defaultID: defaultID,
		log:       log.Named("registry"),
	}
	for _, t := range tenants {
		if _, dup := r.tenants[t.ID]; dup {
			return nil, fmt.Errorf("registry: tenant duplicado %q", t.ID)
		}
		r.tenants[t.ID] = t
	}
	if _, ok := r.tenants[defaultID]; !ok {
		return nil, fmt.Errorf("registry: tenant por defecto %q no definido", defaultID)
	}
	return r, nil
}

// Resolve devuelve la configuración del tenant. Si el id está vacío o no existe, cae
// en el tenant por defecto y emite un warning; nunca falla.
func (r *Registry) Resolve(tenantID string) entity.TenantConfig {
	if cfg, ok := r.tenants[tenantID]; ok {
		return cfg
	}
	r.log.Warn().
		Str("tenant_id", tenantID).
		Str("fallback", r.defaultID).
		Msg("tenant no encontrado, usando tenant por defecto")
	return r.tenants[r.defaultID]
}

// DefaultID id del tenant por defecto.
func (r *Registry) DefaultID() string {
	return r.defaultID
}

// IsModuleEnabled pertenencia del módulo al conjunto habilitado del tenant.
func IsModuleEnabled(cfg entity.TenantConfig, module entity.ModuleID) bool {
	return cfg.HasModule(module)
}

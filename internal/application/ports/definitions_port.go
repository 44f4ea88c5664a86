package ports

import (
	"context"

	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// Definitions configuración estática del producto: tenants, catálogo de demos y ofertas de plan.
// Se carga una sola vez al arrancar y no se muta después.
type Definitions struct {
	Tenants []entity.TenantConfig
	Catalog []entity.CatalogEntry
	Plans   []entity.PlanOffer
}

// DefinitionSource puerto de carga de Definitions (YAML embebido o PostgreSQL).
type DefinitionSource interface {
	LoadDefinitions(ctx context.Context) (*Definitions, error)
}

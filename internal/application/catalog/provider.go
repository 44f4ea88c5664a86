// Package catalog expone el catálogo de aplicaciones demostrables y las ofertas de plan.
package catalog

import (
	"fmt"

	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// ErrEntryNotFound la entrada solicitada no existe en el catálogo.
var ErrEntryNotFound = fmt.Errorf("catálogo: entrada inexistente: %w", domain.ErrNotFound)

// Provider catálogo inmutable en orden de declaración.
type Provider struct {
	entries []entity.CatalogEntry
	byID    map[string]int
	plans   []entity.PlanOffer
}

// NewProvider valida unicidad de ids y conserva el orden.
func NewProvider(entries []entity.CatalogEntry, plans []entity.PlanOffer) (*Provider, error) {
	p := &Provider{
		entries: make([]entity.CatalogEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
		plans:   append([]entity.PlanOffer(nil), plans...),
	}
	for _, e := range entries {
		if _, dup := p.byID[e.ID]; dup {
			return nil, fmt.Errorf("catálogo: id duplicado %q", e.ID)
		}
		p.byID[e.ID] = len(p.entries)
		p.entries = append(p.entries, e)
	}
	return p, nil
}

// List entradas en orden de declaración (copia).
func (p *Provider) List() []entity.CatalogEntry {
	out := make([]entity.CatalogEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Find busca por id. Devuelve ErrEntryNotFound (envuelve domain.ErrNotFound) si no existe.
func (p *Provider) Find(id string) (entity.CatalogEntry, error) {
	i, ok := p.byID[id]
	if !ok {
		return entity.CatalogEntry{}, ErrEntryNotFound
	}
	return p.entries[i], nil
}

// Plans ofertas de plan en orden de declaración.
func (p *Provider) Plans() []entity.PlanOffer {
	out := make([]entity.PlanOffer, len(p.plans))
	copy(out, p.plans)
	return out
}

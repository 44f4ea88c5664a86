// Package staticcfg carga las definiciones del producto desde YAML embebido en el binario.
package staticcfg

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

//go:embed definitions.yaml
var embedded []byte

var _ ports.DefinitionSource = (*Source)(nil)

// Source adaptador de DefinitionSource sobre un documento YAML.
type Source struct {
	raw []byte
}

// NewEmbeddedSource usa el documento embebido.
func NewEmbeddedSource() *Source {
	return &Source{raw: embedded}
}

// NewSource usa un documento arbitrario (tests, overrides).
func NewSource(raw []byte) *Source {
	return &Source{raw: raw}
}

type document struct {
	Tenants []tenantDoc  `yaml:"tenants"`
	Catalog []catalogDoc `yaml:"catalog"`
	Plans   []planDoc    `yaml:"plans"`
}

type tenantDoc struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
	Theme       struct {
		PrimaryColor   string `yaml:"primary_color"`
		SecondaryColor string `yaml:"secondary_color"`
		AccentColor    string `yaml:"accent_color"`
	} `yaml:"theme"`
	Modules []string `yaml:"modules"`
}

type catalogDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Sector      string   `yaml:"sector"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	DemoURL     string   `yaml:"demo_url"`
	Gradient    string   `yaml:"gradient"`
	Flagship    bool     `yaml:"flagship"`
	Features    []string `yaml:"features"`
}

type planDoc struct {
	Tier         string   `yaml:"tier"`
	Name         string   `yaml:"name"`
	MonthlyPrice string   `yaml:"monthly_price"`
	Currency     string   `yaml:"currency"`
	Highlights   []string `yaml:"highlights"`
}

// LoadDefinitions decodifica y valida el documento. ctx no se usa: la fuente está en memoria.
func (s *Source) LoadDefinitions(_ context.Context) (*ports.Definitions, error) {
	var doc document
	if err := yaml.Unmarshal(s.raw, &doc); err != nil {
		return nil, fmt.Errorf("staticcfg: decodificar YAML: %w", err)
	}

	defs := &ports.Definitions{}
	for _, t := range doc.Tenants {
		if t.ID == "" {
			return nil, fmt.Errorf("staticcfg: tenant sin id")
		}
		modules := make([]entity.ModuleID, 0, len(t.Modules))
		for _, m := range t.Modules {
			modules = append(modules, entity.ModuleID(m))
		}
		defs.Tenants = append(defs.Tenants, entity.NewTenantConfig(t.ID, t.DisplayName, entity.Theme{
			PrimaryColor:   t.Theme.PrimaryColor,
			SecondaryColor: t.Theme.SecondaryColor,
			AccentColor:    t.Theme.AccentColor,
		}, modules))
	}

	for _, c := range doc.Catalog {
		if c.ID == "" {
			return nil, fmt.Errorf("staticcfg: entrada de catálogo sin id")
		}
		defs.Catalog = append(defs.Catalog, entity.CatalogEntry{
			ID:          c.ID,
			Name:        c.Name,
			Sector:      c.Sector,
			Description: c.Description,
			IconRef:     c.Icon,
			DemoURL:     c.DemoURL,
			Features:    c.Features,
			GradientRef: c.Gradient,
			IsFlagship:  c.Flagship,
		})
	}

	for _, p := range doc.Plans {
		tier, ok := entity.ParsePlanTier(p.Tier)
		if !ok {
			return nil, fmt.Errorf("staticcfg: plan %q desconocido", p.Tier)
		}
		price, err := decimal.NewFromString(p.MonthlyPrice)
		if err != nil {
			return nil, fmt.Errorf("staticcfg: precio de %s: %w", p.Tier, err)
		}
		defs.Plans = append(defs.Plans, entity.PlanOffer{
			Tier:         tier,
			Name:         p.Name,
			MonthlyPrice: price,
			Currency:     p.Currency,
			Highlights:   p.Highlights,
		})
	}
	return defs, nil
}

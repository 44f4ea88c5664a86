package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// Asegura que DefinitionsSource implementa ports.DefinitionSource.
var _ ports.DefinitionSource = (*DefinitionsSource)(nil)

// DefinitionsSource carga tenants, catálogo y planes desde PostgreSQL.
type DefinitionsSource struct {
	db querier
}

// NewDefinitionsSource construye el adaptador. db suele ser el *pgxpool.Pool.
func NewDefinitionsSource(db querier) *DefinitionsSource {
	return &DefinitionsSource{db: db}
}

type tenantRow struct {
	ID, DisplayName                           string
	PrimaryColor, SecondaryColor, AccentColor string
	Modules                                   []string
}

type catalogRow struct {
	ID, Name, Sector, Description, Icon, DemoURL, Gradient string
	IsFlagship                                             bool
	Features                                               []string
}

type planRow struct {
	Tier, Name   string
	MonthlyPrice decimal.Decimal
	Currency     string
	Highlights   []string
}

// LoadDefinitions lee las tres tablas en orden estable.
func (s *DefinitionsSource) LoadDefinitions(ctx context.Context) (*ports.Definitions, error) {
	tenants, err := queryRows(ctx, s.db, `
		SELECT id, display_name, primary_color, secondary_color, accent_color, modules
		FROM portal_tenants ORDER BY position, id`,
		func(r pgx.Rows) (tenantRow, error) {
			var t tenantRow
			err := r.Scan(&t.ID, &t.DisplayName, &t.PrimaryColor, &t.SecondaryColor, &t.AccentColor, &t.Modules)
			return t, err
		})
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	catalog, err := queryRows(ctx, s.db, `
		SELECT id, name, sector, description, icon, demo_url, gradient, is_flagship, features
		FROM portal_catalog ORDER BY position, id`,
		func(r pgx.Rows) (catalogRow, error) {
			var c catalogRow
			err := r.Scan(&c.ID, &c.Name, &c.Sector, &c.Description, &c.Icon, &c.DemoURL, &c.Gradient, &c.IsFlagship, &c.Features)
			return c, err
		})
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	plans, err := queryRows(ctx, s.db, `
		SELECT tier, name, monthly_price, currency, highlights
		FROM portal_plans ORDER BY monthly_price`,
		func(r pgx.Rows) (planRow, error) {
			var p planRow
			err := r.Scan(&p.Tier, &p.Name, &p.MonthlyPrice, &p.Currency, &p.Highlights)
			return p, err
		})
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return buildDefinitions(tenants, catalog, plans)
}

func queryRows[T any](ctx context.Context, db querier, sql string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func buildDefinitions(tenants []tenantRow, catalog []catalogRow, plans []planRow) (*ports.Definitions, error) {
	defs := &ports.Definitions{}
	for _, t := range tenants {
		modules := make([]entity.ModuleID, 0, len(t.Modules))
		for _, m := range t.Modules {
			modules = append(modules, entity.ModuleID(m))
		}
		defs.Tenants = append(defs.Tenants, entity.NewTenantConfig(t.ID, t.DisplayName, entity.Theme{
			PrimaryColor:   t.PrimaryColor,
			SecondaryColor: t.SecondaryColor,
			AccentColor:    t.AccentColor,
		}, modules))
	}
	for _, c := range catalog {
		defs.Catalog = append(defs.Catalog, entity.CatalogEntry{
			ID:          c.ID,
			Name:        c.Name,
			Sector:      c.Sector,
			Description: c.Description,
			IconRef:     c.Icon,
			DemoURL:     c.DemoURL,
			Features:    c.Features,
			GradientRef: c.Gradient,
			IsFlagship:  c.IsFlagship,
		})
	}
	for _, p := range plans {
		tier, ok := entity.ParsePlanTier(p.Tier)
		if !ok {
			return nil, fmt.Errorf("plan %q desconocido", p.Tier)
		}
		defs.Plans = append(defs.Plans, entity.PlanOffer{
			Tier:         tier,
			Name:         p.Name,
			MonthlyPrice: p.MonthlyPrice,
			Currency:     p.Currency,
			Highlights:   p.Highlights,
		})
	}
	return defs, nil
}

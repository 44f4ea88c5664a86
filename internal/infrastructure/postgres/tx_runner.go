package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(tx querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// SeedDefinitions crea el esquema y hace upsert de todas las definiciones en una sola transacción.
func (r *TxRunner) SeedDefinitions(ctx context.Context, defs *ports.Definitions) error {
	return r.Run(ctx, func(tx querier) error {
		if err := Migrate(ctx, tx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		for i, t := range defs.Tenants {
			if _, err := tx.Exec(ctx, `
				INSERT INTO portal_tenants (id, display_name, primary_color, secondary_color, accent_color, modules, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (id) DO UPDATE SET
					display_name = EXCLUDED.display_name, primary_color = EXCLUDED.primary_color,
					secondary_color = EXCLUDED.secondary_color, accent_color = EXCLUDED.accent_color,
					modules = EXCLUDED.modules, position = EXCLUDED.position`,
				t.ID, t.DisplayName, t.Theme.PrimaryColor, t.Theme.SecondaryColor, t.Theme.AccentColor,
				moduleNames(t.EnabledModules()), i,
			); err != nil {
				return fmt.Errorf("upsert tenant %s: %w", t.ID, err)
			}
		}
		for i, c := range defs.Catalog {
			if _, err := tx.Exec(ctx, `
				INSERT INTO portal_catalog (id, name, sector, description, icon, demo_url, gradient, is_flagship, features, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name, sector = EXCLUDED.sector, description = EXCLUDED.description,
					icon = EXCLUDED.icon, demo_url = EXCLUDED.demo_url, gradient = EXCLUDED.gradient,
					is_flagship = EXCLUDED.is_flagship, features = EXCLUDED.features, position = EXCLUDED.position`,
				c.ID, c.Name, c.Sector, c.Description, c.IconRef, c.DemoURL, c.GradientRef, c.IsFlagship,
				orEmpty(c.Features), i,
			); err != nil {
				return fmt.Errorf("upsert catalog %s: %w", c.ID, err)
			}
		}
		for _, p := range defs.Plans {
			if _, err := tx.Exec(ctx, `
				INSERT INTO portal_plans (tier, name, monthly_price, currency, highlights)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (tier) DO UPDATE SET
					name = EXCLUDED.name, monthly_price = EXCLUDED.monthly_price,
					currency = EXCLUDED.currency, highlights = EXCLUDED.highlights`,
				p.Tier.String(), p.Name, p.MonthlyPrice, p.Currency, orEmpty(p.Highlights),
			); err != nil {
				return fmt.Errorf("upsert plan %s: %w", p.Tier, err)
			}
		}
		return nil
	})
}

func moduleNames(ids []entity.ModuleID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

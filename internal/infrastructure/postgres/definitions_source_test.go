package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

func TestBuildDefinitions(t *testing.T) {
	defs, err := buildDefinitions(
		[]tenantRow{{ID: "restaurante", DisplayName: "Sabor", PrimaryColor: "#111", Modules: []string{"menu_grid", "desconocido", "menu_grid", "chat_widget"}}},
		[]catalogRow{{ID: "bai-partner", Name: "BAI", IsFlagship: true, Features: []string{"a"}}},
		[]planRow{{Tier: "cerebro", Name: "Cerebro", MonthlyPrice: decimal.RequireFromString("149.00"), Currency: "USD"}},
	)
	require.NoError(t, err)

	require.Len(t, defs.Tenants, 1)
	assert.Equal(t, []entity.ModuleID{entity.ModuleMenuGrid, entity.ModuleChatWidget}, defs.Tenants[0].EnabledModules())
	assert.Equal(t, "#111", defs.Tenants[0].Theme.PrimaryColor)

	require.Len(t, defs.Catalog, 1)
	assert.True(t, defs.Catalog[0].IsFlagship)

	require.Len(t, defs.Plans, 1)
	assert.Equal(t, entity.PlanCerebro, defs.Plans[0].Tier)
	assert.True(t, decimal.RequireFromString("149").Equal(defs.Plans[0].MonthlyPrice))
}

func TestBuildDefinitions_PlanDesconocido(t *testing.T) {
	_, err := buildDefinitions(nil, nil, []planRow{{Tier: "GOLD"}})
	assert.Error(t, err)
}

func TestModuleNames(t *testing.T) {
	assert.Equal(t, []string{"hero_section", "chat_widget"},
		moduleNames([]entity.ModuleID{entity.ModuleHeroSection, entity.ModuleChatWidget}))
	assert.Equal(t, []string{}, orEmpty(nil))
}

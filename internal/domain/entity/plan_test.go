package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

func TestParsePlanTier(t *testing.T) {
	cases := []struct {
		raw  string
		want entity.PlanTier
		ok   bool
	}{
		{"PARTNER", entity.PlanPartner, true},
		{"partner", entity.PlanPartner, true},
		{" Cerebro ", entity.PlanCerebro, true},
		{"motor", entity.PlanMotor, true},
		{"basic", entity.PlanBasic, true},
		{"enterprise", entity.PlanBasic, false},
		{"", entity.PlanBasic, false},
	}
	for _, tc := range cases {
		got, ok := entity.ParsePlanTier(tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
	}
}

func TestPlanTier_OrdenTotal(t *testing.T) {
	tiers := entity.AllPlanTiers()
	for i := 1; i < len(tiers); i++ {
		assert.True(t, tiers[i].AtLeast(tiers[i-1]))
		assert.False(t, tiers[i-1].AtLeast(tiers[i]))
	}
}

func TestPlanTier_JSON(t *testing.T) {
	var v struct {
		Tier entity.PlanTier `json:"tier"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tier":"cerebro"}`), &v))
	assert.Equal(t, entity.PlanCerebro, v.Tier)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"CEREBRO"}`, string(out))
}

func TestNewTenantConfig_IgnoraDesconocidosYDuplicados(t *testing.T) {
	cfg := entity.NewTenantConfig("resto", "Resto", entity.Theme{PrimaryColor: "#f00"}, []entity.ModuleID{
		entity.ModuleHeroSection, "laser_show", entity.ModuleMenuGrid, entity.ModuleHeroSection,
	})
	assert.Equal(t, []entity.ModuleID{entity.ModuleHeroSection, entity.ModuleMenuGrid}, cfg.EnabledModules())
	assert.True(t, cfg.HasModule(entity.ModuleMenuGrid))
	assert.False(t, cfg.HasModule("laser_show"))
}

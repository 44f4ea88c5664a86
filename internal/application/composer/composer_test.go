package composer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/partner-portal/internal/application/catalog"
	"github.com/jhoicas/partner-portal/internal/application/composer"
	"github.com/jhoicas/partner-portal/internal/application/guard"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testCatalog(t *testing.T) *catalog.Provider {
	t.Helper()
	p, err := catalog.NewProvider([]entity.CatalogEntry{
		{ID: "restaurante", Name: "Sabor"},
		{ID: "inmobiliaria", Name: "Hogar"},
		{ID: "bai-partner", Name: "BAI", IsFlagship: true},
		{ID: "clinica", Name: "Vital"},
		{ID: "gimnasio", Name: "Fit"},
	}, []entity.PlanOffer{
		{Tier: entity.PlanMotor, Name: "Motor", MonthlyPrice: decimal.RequireFromString("49"), Currency: "USD"},
	})
	require.NoError(t, err)
	return p
}

func testComposer(t *testing.T) *composer.Composer {
	t.Helper()
	return composer.New(guard.DefaultRoutes(), testCatalog(t))
}

func tenant(modules ...entity.ModuleID) entity.TenantConfig {
	return entity.NewTenantConfig("partner", "Partner", entity.Theme{PrimaryColor: "#000"}, modules)
}

func user(tier entity.PlanTier, admin bool) entity.SessionState {
	return entity.Authenticated(entity.SessionIdentity{
		UserID: "1", Email: "u@x.y", PlanTier: tier, IsActive: true, IsAdmin: admin,
	})
}

func ids(blocks []composer.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.ID
	}
	return out
}

func inSlot(blocks []composer.Block, slot string) []composer.Block {
	var out []composer.Block
	for _, b := range blocks {
		if b.Slot == slot {
			out = append(out, b)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de precedencia
// ──────────────────────────────────────────────────────────────────────────────

func TestCompose_RutaPublicaSinGateYConModulosDelTenant(t *testing.T) {
	c := testComposer(t)
	out := c.Compose(composer.Input{
		Tenant:  tenant(entity.ModuleHeroSection, entity.ModuleMenuGrid),
		Session: entity.Unauthenticated(),
		Route:   "/",
	})

	assert.False(t, out.IsRedirect())
	assert.Equal(t, []string{"navbar", "hero", "menu_grid", "footer"}, ids(out.Blocks))
}

func TestCompose_PricingUsaOfertas(t *testing.T) {
	out := testComposer(t).Compose(composer.Input{
		Tenant:  tenant(entity.ModulePricingTable),
		Session: entity.Unauthenticated(),
		Route:   "/",
	})
	var pricing *composer.Block
	for i := range out.Blocks {
		if out.Blocks[i].ID == "pricing" {
			pricing = &out.Blocks[i]
		}
	}
	require.NotNil(t, pricing)
	plans := pricing.Props["plans"].([]map[string]any)
	require.Len(t, plans, 1)
	assert.Equal(t, "49.00", plans[0]["monthly_price"])
	assert.Equal(t, "MOTOR", plans[0]["tier"])
}

func TestCompose_ProtegidaSinIdentidadRedirige(t *testing.T) {
	c := testComposer(t)
	for _, route := range []string{"/dashboard", "/settings", "/software", "/demo/restaurante", "/data-mining", "/automation"} {
		out := c.Compose(composer.Input{Tenant: tenant(), Session: entity.Unauthenticated(), Route: route})
		assert.Equal(t, "/login", out.RedirectTo, "route=%s", route)
		assert.Empty(t, out.Blocks, "route=%s", route)
	}
}

func TestCompose_LoginNoRequiereIdentidad(t *testing.T) {
	out := testComposer(t).Compose(composer.Input{Tenant: tenant(), Session: entity.Unauthenticated(), Route: "/login"})
	require.Len(t, out.Blocks, 1)
	assert.Equal(t, "auth_form", out.Blocks[0].ID)
	assert.Equal(t, "login", out.Blocks[0].Props["mode"])
}

func TestCompose_BloquesGateadosPorPlanYAdmin(t *testing.T) {
	c := testComposer(t)

	basic := c.Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanBasic, false), Route: "/dashboard"})
	assert.NotContains(t, ids(basic.Blocks), "usage_chart")
	assert.NotContains(t, ids(basic.Blocks), "platform_overview")
	assert.NotContains(t, ids(basic.Blocks), "admin_badge")

	admin := c.Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanMotor, true), Route: "/dashboard"})
	assert.Contains(t, ids(admin.Blocks), "usage_chart")
	assert.Contains(t, ids(admin.Blocks), "platform_overview")
	assert.Contains(t, ids(admin.Blocks), "admin_badge")
}

// PARTNER ve "deploy application"; MOTOR ve "upgrade to Partner"; nunca ambos.
func TestCompose_SlotDeployExclusivo(t *testing.T) {
	c := testComposer(t)

	partner := c.Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanPartner, false), Route: "/software"})
	slot := inSlot(partner.Blocks, composer.SlotDeployAction)
	require.Len(t, slot, 1)
	assert.Equal(t, "deploy_application", slot[0].ID)

	motor := c.Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanMotor, false), Route: "/software"})
	slot = inSlot(motor.Blocks, composer.SlotDeployAction)
	require.Len(t, slot, 1)
	assert.Equal(t, "upgrade_to_partner", slot[0].ID)
	assert.Equal(t, "PARTNER", slot[0].Props["required_tier"])
}

func TestCompose_SlotsExclusivosSiempreUnoPorSlot(t *testing.T) {
	c := testComposer(t)
	slots := map[string]string{
		"/software":         composer.SlotDeployAction,
		"/settings":         composer.SlotSettingsAdmin,
		"/automation":       composer.SlotAutomationPanel,
		"/data-mining":      composer.SlotMiningPanel,
		"/demo/restaurante": composer.SlotEditorAction,
	}
	for _, tier := range entity.AllPlanTiers() {
		for _, admin := range []bool{false, true} {
			for route, slot := range slots {
				out := c.Compose(composer.Input{Tenant: tenant(), Session: user(tier, admin), Route: route})
				assert.Len(t, inSlot(out.Blocks, slot), 1, "route=%s tier=%s admin=%v", route, tier, admin)
			}
		}
	}
}

func TestCompose_EditorSegunAdmin(t *testing.T) {
	c := testComposer(t)

	admin := c.Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanBasic, true), Route: "/demo/restaurante"})
	assert.Equal(t, "open_editor", inSlot(admin.Blocks, composer.SlotEditorAction)[0].ID)

	client := c.Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanPartner, false), Route: "/demo/restaurante"})
	assert.Equal(t, "ask_assistant", inSlot(client.Blocks, composer.SlotEditorAction)[0].ID)
}

func TestCompose_SesionPendienteUsaPlaceholders(t *testing.T) {
	out := testComposer(t).Compose(composer.Input{Tenant: tenant(), Session: entity.Pending(), Route: "/software"})

	assert.False(t, out.IsRedirect())
	require.NotEmpty(t, out.Blocks)
	assert.Equal(t, "session_pending", out.Blocks[0].ID)

	slot := inSlot(out.Blocks, composer.SlotDeployAction)
	require.Len(t, slot, 1)
	assert.Equal(t, composer.PlaceholderID, slot[0].ID)
	assert.NotContains(t, ids(out.Blocks), "admin_badge", "los bloques gateados se omiten sin identidad")
	assert.Len(t, inSlot(out.Blocks, composer.SlotCards), 5)
}

func TestCompose_CuentaInactivaMuestraAviso(t *testing.T) {
	st := entity.Authenticated(entity.SessionIdentity{Email: "u@x.y", PlanTier: entity.PlanMotor, IsActive: false})
	out := testComposer(t).Compose(composer.Input{Tenant: tenant(), Session: st, Route: "/dashboard"})
	assert.Equal(t, "account_inactive", out.Blocks[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo y demo
// ──────────────────────────────────────────────────────────────────────────────

func TestCompose_CatalogoFlagshipPrimeroEstable(t *testing.T) {
	out := testComposer(t).Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanMotor, false), Route: "/software"})

	cards := inSlot(out.Blocks, composer.SlotCards)
	require.Len(t, cards, 5)
	got := make([]string, len(cards))
	for i, b := range cards {
		got[i] = b.Props["app_id"].(string)
	}
	assert.Equal(t, []string{"bai-partner", "restaurante", "inmobiliaria", "clinica", "gimnasio"}, got)
}

func TestOrderCatalog_NoMutaEntrada(t *testing.T) {
	in := []entity.CatalogEntry{{ID: "a"}, {ID: "b", IsFlagship: true}, {ID: "c", IsFlagship: true}, {ID: "d"}}
	out := composer.OrderCatalog(in)
	assert.Equal(t, []string{"b", "c", "a", "d"}, []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID})
	assert.Equal(t, "a", in[0].ID)
}

func TestCompose_DemoInexistenteEsNotFound(t *testing.T) {
	out := testComposer(t).Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanMotor, false), Route: "/demo/unknown-id"})
	assert.True(t, out.NotFound)
	require.Len(t, out.Blocks, 1)
	assert.Equal(t, "not_found", out.Blocks[0].ID)
	assert.Equal(t, "unknown-id", out.Blocks[0].Props["ref"])
}

func TestCompose_DemoSegunRolSimulado(t *testing.T) {
	c := testComposer(t)
	for role, want := range map[entity.DemoRole]string{
		entity.DemoGuest:  "demo_guest_view",
		entity.DemoClient: "demo_client_view",
		entity.DemoOwner:  "demo_owner_view",
	} {
		out := c.Compose(composer.Input{
			Tenant: tenant(), Session: user(entity.PlanMotor, false),
			Route: "/demo/bai-partner", DemoRole: role,
		})
		assert.Contains(t, ids(out.Blocks), want)
		switcher := inSlot(out.Blocks, composer.SlotNav)
		require.Len(t, switcher, 1)
		assert.Equal(t, role.String(), switcher[0].Props["active"])
	}
}

func TestCompose_RutaProtegidaDesconocidaEsNotFound(t *testing.T) {
	out := testComposer(t).Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanMotor, false), Route: "/no-existe"})
	assert.True(t, out.NotFound)
}

func TestCompose_SidebarSegunCapacidades(t *testing.T) {
	c := testComposer(t)
	out := c.Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanMotor, false), Route: "/dashboard?x=1"})
	assert.Equal(t, "/dashboard", out.Route)
	nav := inSlot(out.Blocks, composer.SlotNav)
	require.Len(t, nav, 1)
	assert.Equal(t, []string{"/dashboard", "/automation", "/software", "/settings"}, nav[0].Props["links"])

	out = c.Compose(composer.Input{Tenant: tenant(), Session: user(entity.PlanCerebro, false), Route: "/dashboard"})
	nav = inSlot(out.Blocks, composer.SlotNav)
	assert.Contains(t, nav[0].Props["links"], "/data-mining")
}

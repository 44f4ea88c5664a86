package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/partner-portal/internal/domain/access"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

const testAdminEmail = "admin@partner.test"

func identity(tier entity.PlanTier, admin bool) *entity.SessionIdentity {
	return &entity.SessionIdentity{
		UserID:   "42",
		Email:    "user@partner.test",
		PlanTier: tier,
		IsActive: true,
		IsAdmin:  admin,
	}
}

func TestCanAccess_IdentidadAusenteNoSatisfaceNada(t *testing.T) {
	assert.False(t, access.CanAccess(nil, access.None()))
	assert.False(t, access.CanAccess(nil, access.Admin()))
	for _, tier := range entity.AllPlanTiers() {
		assert.False(t, access.CanAccess(nil, access.Plan(tier)), "tier %s", tier)
	}
}

// El plan policy es monótono: si A >= B y B satisface el requisito, A también.
func TestCanAccess_PlanPolicyMonotona(t *testing.T) {
	tiers := entity.AllPlanTiers()
	for _, required := range tiers {
		for _, b := range tiers {
			if !access.CanAccess(identity(b, false), access.Plan(required)) {
				continue
			}
			for _, a := range tiers {
				if a < b {
					continue
				}
				assert.True(t, access.CanAccess(identity(a, false), access.Plan(required)),
					"%s >= %s debe satisfacer %s", a, b, required)
			}
		}
	}
}

func TestCanAccess_PlanPolicyTablaCompleta(t *testing.T) {
	for _, have := range entity.AllPlanTiers() {
		for _, need := range entity.AllPlanTiers() {
			got := access.CanAccess(identity(have, false), access.Plan(need))
			assert.Equal(t, have >= need, got, "have=%s need=%s", have, need)
		}
	}
}

func TestCanAccess_PoliticasIndependientes(t *testing.T) {
	adminBasic := identity(entity.PlanBasic, true)
	partner := identity(entity.PlanPartner, false)

	assert.True(t, access.CanAccess(adminBasic, access.Admin()))
	assert.False(t, access.CanAccess(adminBasic, access.Plan(entity.PlanMotor)),
		"ser admin no concede niveles de plan")
	assert.False(t, access.CanAccess(partner, access.Admin()),
		"el nivel PARTNER no concede capacidades de admin")
	assert.True(t, access.CanAccess(partner, access.Plan(entity.PlanPartner)))
}

func TestIsAdministrator_CoincidenciaExacta(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{testAdminEmail, true},
		{"Admin@partner.test", false},
		{"admin@partner.test ", false},
		{"", false},
		{"other@partner.test", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, access.IsAdministrator(tc.email, testAdminEmail), "email=%q", tc.email)
	}
	assert.False(t, access.IsAdministrator("", ""), "sin admin configurado nadie es admin")
	assert.False(t, access.IsAdministrator("cualquiera@x.test", ""))
}

func TestAllows_Capacidades(t *testing.T) {
	motor := identity(entity.PlanMotor, false)
	cerebro := identity(entity.PlanCerebro, false)
	partner := identity(entity.PlanPartner, false)
	admin := identity(entity.PlanBasic, true)

	assert.True(t, access.Allows(motor, access.CapAccessAutomation))
	assert.False(t, access.Allows(motor, access.CapAccessMining))
	assert.True(t, access.Allows(cerebro, access.CapAccessMining))
	assert.False(t, access.Allows(cerebro, access.CapDeployApplication))
	assert.True(t, access.Allows(partner, access.CapDeployApplication))
	assert.False(t, access.Allows(partner, access.CapOpenEditor))
	assert.True(t, access.Allows(admin, access.CapOpenEditor))
	assert.False(t, access.Allows(partner, access.Capability("inexistente")))
}

func TestGranted_OrdenadoYSinDuplicados(t *testing.T) {
	got := access.Granted(identity(entity.PlanCerebro, false))
	assert.Equal(t, []access.Capability{
		access.CapAccessAutomation,
		access.CapAccessMarketing,
		access.CapAccessMining,
		access.CapAIContentGeneration,
	}, got)
	assert.Empty(t, access.Granted(nil))
}

func TestChatQuota(t *testing.T) {
	assert.Equal(t, 100, access.ChatQuota(entity.PlanBasic))
	assert.Equal(t, 100_000, access.ChatQuota(entity.PlanPartner))
}

package access

import (
	"sort"

	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// Capability permiso con nombre que se comprueba antes de mostrar un bloque o ejecutar una acción.
type Capability string

const (
	CapAccessAutomation    Capability = "access_automation"
	CapAccessMining        Capability = "access_mining"
	CapAccessMarketing     Capability = "access_marketing"
	CapAIContentGeneration Capability = "ai_content_generation"
	CapContentCampaigns    Capability = "content_campaigns"
	CapDeployApplication   Capability = "deploy_application"
	CapDedicatedCSM        Capability = "dedicated_csm"
	CapManagePlatform      Capability = "manage_platform"
	CapOpenEditor          Capability = "open_editor"
)

var matrix = map[Capability]Requirement{
	CapAccessAutomation:    Plan(entity.PlanMotor),
	CapAccessMining:        Plan(entity.PlanCerebro),
	CapAccessMarketing:     Plan(entity.PlanCerebro),
	CapAIContentGeneration: Plan(entity.PlanCerebro),
	CapContentCampaigns:    Plan(entity.PlanPartner),
	CapDeployApplication:   Plan(entity.PlanPartner),
	CapDedicatedCSM:        Plan(entity.PlanPartner),
	CapManagePlatform:      Admin(),
	CapOpenEditor:          Admin(),
}

// RequirementFor devuelve el requisito de la capacidad. ok=false para capacidades desconocidas.
func RequirementFor(c Capability) (Requirement, bool) {
	r, ok := matrix[c]
	return r, ok
}

// Allows evalúa una capacidad con nombre. Las desconocidas se deniegan.
func Allows(id *entity.SessionIdentity, c Capability) bool {
	req, ok := RequirementFor(c)
	if !ok {
		return false
	}
	return CanAccess(id, req)
}

// Granted lista ordenada de capacidades concedidas a la identidad.
func Granted(id *entity.SessionIdentity) []Capability {
	out := make([]Capability, 0, len(matrix))
	for c, req := range matrix {
		if CanAccess(id, req) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var chatQuota = map[entity.PlanTier]int{
	entity.PlanBasic:   100,
	entity.PlanMotor:   1_000,
	entity.PlanCerebro: 10_000,
	entity.PlanPartner: 100_000,
}

// ChatQuota cupo mensual de conversaciones del asistente por nivel.
func ChatQuota(tier entity.PlanTier) int {
	return chatQuota[tier]
}

// Package access contiene el gate de rol/plan: funciones puras, totales y sin I/O.
//
// Hay dos políticas independientes (admin y plan). El llamador elige cuál aplica
// a cada bloque mediante Requirement; nunca se fusionan en una regla opaca.
package access

import "github.com/jhoicas/partner-portal/internal/domain/entity"

// Policy política que evalúa un Requirement.
type Policy int

const (
	PolicyNone Policy = iota
	PolicyAdmin
	PolicyPlan
)

// Requirement requisito de acceso de un bloque o acción.
type Requirement struct {
	Policy Policy
	Tier   entity.PlanTier // solo con PolicyPlan
}

// None sin requisito: el bloque no pasa por el gate.
func None() Requirement { return Requirement{Policy: PolicyNone} }

// Admin requisito de identidad administrativa.
func Admin() Requirement { return Requirement{Policy: PolicyAdmin} }

// Plan requisito de nivel mínimo.
func Plan(tier entity.PlanTier) Requirement { return Requirement{Policy: PolicyPlan, Tier: tier} }

// IsNone informa si el requisito es vacío.
func (r Requirement) IsNone() bool { return r.Policy == PolicyNone }

// AdminPolicy concede capacidades de administración si y solo si la identidad es admin.
func AdminPolicy(id *entity.SessionIdentity) bool {
	return id != nil && id.IsAdmin
}

// PlanPolicy concede si el nivel de la identidad es >= required.
func PlanPolicy(id *entity.SessionIdentity, required entity.PlanTier) bool {
	return id != nil && id.PlanTier.AtLeast(required)
}

// CanAccess evalúa req para la identidad. Una identidad ausente no satisface
// ningún requisito (fail-closed), ni siquiera None.
func CanAccess(id *entity.SessionIdentity, req Requirement) bool {
	if id == nil {
		return false
	}
	switch req.Policy {
	case PolicyNone:
		return true
	case PolicyAdmin:
		return AdminPolicy(id)
	case PolicyPlan:
		return PlanPolicy(id, req.Tier)
	}
	return false
}

// IsAdministrator compara el email con la identidad administrativa configurada.
// La comparación es exacta (sensible a mayúsculas); sin identidad configurada nadie es admin.
//
// TODO: reemplazar por el claim de rol que devuelve /api/auth/me cuando el backend lo garantice.
func IsAdministrator(email, adminEmail string) bool {
	return adminEmail != "" && email == adminEmail
}

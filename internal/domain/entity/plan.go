package entity

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PlanTier nivel de suscripción. El orden numérico es el orden total del producto:
// BASIC < MOTOR < CEREBRO < PARTNER.
type PlanTier int

const (
	PlanBasic PlanTier = iota
	PlanMotor
	PlanCerebro
	PlanPartner
)

var planNames = [...]string{"BASIC", "MOTOR", "CEREBRO", "PARTNER"}

// AllPlanTiers devuelve los niveles en orden ascendente.
func AllPlanTiers() []PlanTier {
	return []PlanTier{PlanBasic, PlanMotor, PlanCerebro, PlanPartner}
}

func (t PlanTier) String() string {
	if t < PlanBasic || t > PlanPartner {
		return planNames[PlanBasic]
	}
	return planNames[t]
}

// AtLeast informa si t es igual o superior a required.
func (t PlanTier) AtLeast(required PlanTier) bool {
	return t >= required
}

var upper = cases.Upper(language.Und)

// ParsePlanTier normaliza a mayúsculas y valida contra el conjunto de niveles.
// ok es false si el valor no es reconocido; en ese caso devuelve el nivel más bajo.
func ParsePlanTier(raw string) (PlanTier, bool) {
	name := upper.String(strings.TrimSpace(raw))
	for i, n := range planNames {
		if n == name {
			return PlanTier(i), true
		}
	}
	return PlanBasic, false
}

// MarshalText permite usar PlanTier directamente en JSON y YAML.
func (t PlanTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText acepta cualquier capitalización; valores desconocidos caen en BASIC.
func (t *PlanTier) UnmarshalText(b []byte) error {
	*t, _ = ParsePlanTier(string(b))
	return nil
}

// PlanOffer oferta comercial de un nivel (bloque de precios del marketing).
type PlanOffer struct {
	Tier         PlanTier
	Name         string
	MonthlyPrice decimal.Decimal
	Currency     string
	Highlights   []string
}

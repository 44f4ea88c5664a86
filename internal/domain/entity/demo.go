package entity

// DemoRole rol simulado dentro del sandbox de demo. Es estado efímero de la vista:
// no se persiste ni se relaciona con la sesión real.
type DemoRole int

const (
	DemoGuest DemoRole = iota
	DemoClient
	DemoOwner
)

// AllDemoRoles devuelve los roles en el orden en que los muestra el selector.
func AllDemoRoles() []DemoRole {
	return []DemoRole{DemoGuest, DemoClient, DemoOwner}
}

func (r DemoRole) String() string {
	switch r {
	case DemoClient:
		return "client"
	case DemoOwner:
		return "owner"
	default:
		return "guest"
	}
}

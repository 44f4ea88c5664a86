// Package demo implementa el simulador de roles del sandbox de demos.
// El rol es estado efímero de la petición: no se persiste ni se mezcla con la sesión real.
package demo

import (
	"strings"

	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// ParseRole interpreta el valor del selector; ausente o desconocido es guest.
func ParseRole(raw string) entity.DemoRole {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "client":
		return entity.DemoClient
	case "owner":
		return entity.DemoOwner
	default:
		return entity.DemoGuest
	}
}

// View contenido que ve cada rol simulado dentro de la demo.
type View struct {
	BlockID  string
	Headline string
	Sections []string
	Actions  []string
}

// ViewFor devuelve la vista del rol para la aplicación de la entrada.
func ViewFor(role entity.DemoRole, entry entity.CatalogEntry) View {
	switch role {
	case entity.DemoGuest:
		return View{
			BlockID:  "demo_guest_view",
			Headline: entry.Name,
			Sections: []string{"landing", "features", "contact"},
			Actions:  []string{"register_interest"},
		}
	case entity.DemoClient:
		return View{
			BlockID:  "demo_client_view",
			Headline: "Mi cuenta en " + entry.Name,
			Sections: []string{"catalog", "bookings", "assistant"},
			Actions:  []string{"book", "order", "chat"},
		}
	case entity.DemoOwner:
		return View{
			BlockID:  "demo_owner_view",
			Headline: "Panel de " + entry.Name,
			Sections: []string{"metrics", "inventory", "customers", "automation"},
			Actions:  []string{"edit_catalog", "export_report", "configure_bot"},
		}
	}
	return ViewFor(entity.DemoGuest, entry)
}

// Switcher opciones del selector de rol con la activa marcada.
type Switcher struct {
	Roles  []string
	Active string
}

// SwitcherFor construye el selector para el rol activo.
func SwitcherFor(active entity.DemoRole) Switcher {
	s := Switcher{Active: active.String()}
	for _, r := range entity.AllDemoRoles() {
		s.Roles = append(s.Roles, r.String())
	}
	return s
}

package entity

// ModuleID identifica un bloque de UI activable por tenant (registro "LEGO").
type ModuleID string

// Módulos conocidos. Cualquier otro valor en la configuración se ignora al componer vistas.
const (
	ModuleHeroSection   ModuleID = "hero_section"
	ModuleBookingSystem ModuleID = "booking_system"
	ModuleMenuGrid      ModuleID = "menu_grid"
	ModulePropertyGrid  ModuleID = "property_grid"
	ModuleFeatureList   ModuleID = "feature_list"
	ModulePricingTable  ModuleID = "pricing_table"
	ModuleTestimonials  ModuleID = "testimonials"
	ModuleContactForm   ModuleID = "contact_form"
	ModuleChatWidget    ModuleID = "chat_widget"
)

var knownModules = map[ModuleID]struct{}{
	ModuleHeroSection:   {},
	ModuleBookingSystem: {},
	ModuleMenuGrid:      {},
	ModulePropertyGrid:  {},
	ModuleFeatureList:   {},
	ModulePricingTable:  {},
	ModuleTestimonials:  {},
	ModuleContactForm:   {},
	ModuleChatWidget:    {},
}

// Known informa si el id pertenece a la enumeración de módulos.
func (m ModuleID) Known() bool {
	_, ok := knownModules[m]
	return ok
}

// Theme colores de marca del tenant.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color,omitempty"`
}

// TenantConfig identidad de despliegue: tema + módulos habilitados.
// Es inmutable una vez construida; usar NewTenantConfig.
type TenantConfig struct {
	ID          string
	DisplayName string
	Theme       Theme
	modules     map[ModuleID]struct{}
	order       []ModuleID
}

// NewTenantConfig construye la configuración descartando ids desconocidos y duplicados.
// El orden de declaración de los módulos se conserva.
func NewTenantConfig(id, displayName string, theme Theme, modules []ModuleID) TenantConfig {
	cfg := TenantConfig{
		ID:          id,
		DisplayName: displayName,
		Theme:       theme,
		modules:     make(map[ModuleID]struct{}, len(modules)),
	}
	for _, m := range modules {
		if !m.Known() {
			continue
		}
		if _, dup := cfg.modules[m]; dup {
			continue
		}
		cfg.modules[m] = struct{}{}
		cfg.order = append(cfg.order, m)
	}
	return cfg
}

// HasModule pertenencia al conjunto de módulos habilitados.
func (c TenantConfig) HasModule(m ModuleID) bool {
	_, ok := c.modules[m]
	return ok
}

// EnabledModules copia de los módulos habilitados en orden de declaración.
func (c TenantConfig) EnabledModules() []ModuleID {
	out := make([]ModuleID, len(c.order))
	copy(out, c.order)
	return out
}

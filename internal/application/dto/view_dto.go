package dto

import "time"

// BlockDTO descriptor de un bloque de UI a montar.
type BlockDTO struct {
	ID     string         `json:"id"`
	Slot   string         `json:"slot"`
	Module string         `json:"module,omitempty"`
	Props  map[string]any `json:"props,omitempty"`
}

// ThemeDTO tema del tenant activo.
type ThemeDTO struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	AccentColor    string `json:"accent_color,omitempty"`
}

// TenantDTO tenant activo del despliegue.
type TenantDTO struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Theme       ThemeDTO `json:"theme"`
	Modules     []string `json:"modules"`
}

// ViewResponse composición de una ruta.
type ViewResponse struct {
	Route   string     `json:"route"`
	Session string     `json:"session"`
	Tenant  TenantDTO  `json:"tenant"`
	Blocks  []BlockDTO `json:"blocks"`
}

// ActionResponse resultado clasificado de una acción delegada al backend.
type ActionResponse struct {
	Action string `json:"action"`
	Status int    `json:"status"`
	Result any    `json:"result,omitempty"`
}

// HealthResponse salida de GET /healthz.
type HealthResponse struct {
	Status        string     `json:"status"`
	Service       string     `json:"service"`
	Tenant        string     `json:"tenant"`
	BackendOnline bool       `json:"backend_online"`
	LastCheck     *time.Time `json:"last_check,omitempty"`
	LastError     string     `json:"last_error,omitempty"`
}

package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpgradeErrorResponse 403 por plan insuficiente: incluye el nivel requerido para el aviso de upgrade.
type UpgradeErrorResponse struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RequiredTier string `json:"required_tier,omitempty"`
	Capability   string `json:"capability,omitempty"`
}

package dto

// MeResponse cuerpo de GET /api/auth/me del backend.
type MeResponse struct {
	ID       FlexibleID `json:"id"`
	Email    string     `json:"email"`
	FullName *string    `json:"full_name"`
	PlanTier string     `json:"plan_tier"`
	Role     string     `json:"role,omitempty"`
	IsActive bool       `json:"is_active"`
}

// FlexibleID acepta ids numéricos o string (el backend usa enteros).
type FlexibleID string

// UnmarshalJSON quita comillas si existen; los números se guardan tal cual.
func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*f = FlexibleID(s)
	return nil
}

// UserDTO usuario expuesto al shell autenticado.
type UserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	IsActive bool   `json:"is_active"`
}

// SessionResponse salida de GET /session.
type SessionResponse struct {
	Status          string   `json:"status"`
	IsAuthenticated bool     `json:"is_authenticated"`
	IsAdmin         bool     `json:"is_admin"`
	PlanTier        string   `json:"plan_tier,omitempty"`
	User            *UserDTO `json:"user,omitempty"`
	Capabilities    []string `json:"capabilities"`
	ChatQuota       int      `json:"chat_quota,omitempty"`
}

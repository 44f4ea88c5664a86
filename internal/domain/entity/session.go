package entity

// SessionIdentity identidad resuelta contra el backend para una credencial válida.
// Se reemplaza completa en cada resolución; nunca se muta parcialmente.
type SessionIdentity struct {
	UserID   string
	Email    string
	FullName string
	PlanTier PlanTier
	IsActive bool
	IsAdmin  bool
}

// SessionStatus estado de la sesión tal como lo ve el compositor.
type SessionStatus int

const (
	SessionUnauthenticated SessionStatus = iota
	SessionAuthenticated
	// SessionPending: hay credencial pero el backend no respondió (fallo transitorio).
	SessionPending
)

func (s SessionStatus) String() string {
	switch s {
	case SessionAuthenticated:
		return "authenticated"
	case SessionPending:
		return "pending"
	default:
		return "unauthenticated"
	}
}

// SessionState variante etiquetada: Identity solo es no-nil en SessionAuthenticated.
type SessionState struct {
	Status   SessionStatus
	Identity *SessionIdentity
}

// Authenticated construye el estado autenticado.
func Authenticated(id SessionIdentity) SessionState {
	return SessionState{Status: SessionAuthenticated, Identity: &id}
}

// Unauthenticated estado sin identidad.
func Unauthenticated() SessionState {
	return SessionState{Status: SessionUnauthenticated}
}

// Pending estado con credencial pero identidad desconocida.
func Pending() SessionState {
	return SessionState{Status: SessionPending}
}

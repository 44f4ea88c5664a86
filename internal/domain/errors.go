package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthenticated = errors.New("sesión ausente, inválida o expirada")
	ErrForbidden       = errors.New("acceso denegado por plan o rol")
	ErrTransient       = errors.New("fallo transitorio del backend")
)

// Kind clasifica cualquier error de frontera en una de las cuatro categorías
// que el compositor y el guard saben convertir en un estado renderizable.
type Kind int

const (
	KindNone Kind = iota
	KindUnauthenticated
	KindForbidden
	KindTransient
	KindNotFound
)

// String devuelve el nombre estable de la categoría (se usa en métricas y respuestas JSON).
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindTransient:
		return "transient"
	case KindNotFound:
		return "not_found"
	}
	return "unknown"
}

// KindOf clasifica err. nil es KindNone; cualquier error que no envuelva un
// sentinel conocido se trata como transitorio (nunca como fatal).
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindTransient
	}
}

package ports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jhoicas/partner-portal/internal/application/dto"
)

// IdentityClient puerto de salida hacia el endpoint de identidad del backend externo.
// Los errores devueltos ya están clasificados (domain.ErrUnauthenticated / domain.ErrTransient).
type IdentityClient interface {
	Me(ctx context.Context, credential string) (*dto.MeResponse, error)
}

// SessionCache caché opcional de identidades resueltas, indexada por credencial.
type SessionCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// HealthProbe consulta el endpoint de salud del backend.
type HealthProbe interface {
	Ping(ctx context.Context) error
}

// ActionForwarder reenvía acciones gateadas al backend y clasifica el resultado.
type ActionForwarder interface {
	Forward(ctx context.Context, method, path, credential string, body []byte) (int, json.RawMessage, error)
}

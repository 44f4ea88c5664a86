// Package session resuelve la identidad del usuario a partir de la credencial bearer.
package session

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/jhoicas/partner-portal/internal/application/dto"
	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/access"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
	"github.com/jhoicas/partner-portal/pkg/jwt"
	"github.com/jhoicas/partner-portal/pkg/logger"
)

// Config parámetros del resolver.
type Config struct {
	AdminEmail string        // identidad administrativa (coincidencia exacta)
	CacheTTL   time.Duration // 0 = sin caché
}

// Resolver un intento por activación de página; sin reintentos propios.
type Resolver struct {
	client ports.IdentityClient
	cache  ports.SessionCache
	cfg    Config
	log    *logger.Logger
	now    func() time.Time
}

// NewResolver construye el resolver. cache puede ser nil.
func NewResolver(client ports.IdentityClient, cache ports.SessionCache, cfg Config, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{
		client: client,
		cache:  cache,
		cfg:    cfg,
		log:    log.Named("session"),
		now:    time.Now,
	}
}

// Resolve devuelve la identidad o un error clasificado:
//   - domain.ErrUnauthenticated: sin credencial, credencial vencida o 401 del backend.
//   - domain.ErrTransient: cualquier otro fallo; la credencial no debe borrarse.
func (r *Resolver) Resolve(ctx context.Context, credential string) (*entity.SessionIdentity, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, domain.ErrUnauthenticated
	}
	if jwt.Expired(credential, r.now()) {
		return nil, fmt.Errorf("session: credencial vencida: %w", domain.ErrUnauthenticated)
	}

	if id, ok := r.cached(ctx, credential); ok {
		return id, nil
	}

	me, err := r.client.Me(ctx, credential)
	if err != nil {
		if domain.KindOf(err) == domain.KindUnauthenticated {
			r.Invalidate(ctx, credential)
			return nil, fmt.Errorf("session: %w", domain.ErrUnauthenticated)
		}
		r.log.Warn().Err(err).Msg("no se pudo resolver la sesión")
		return nil, fmt.Errorf("session: %v: %w", err, domain.ErrTransient)
	}

	id := r.identityFrom(me)
	r.log.Debug().Str("user_id", id.UserID).Stringer("plan_tier", id.PlanTier).Bool("is_admin", id.IsAdmin).Msg("sesión resuelta")
	r.store(ctx, credential, id)
	return id, nil
}

// State traduce Resolve a la variante que consume el compositor.
func (r *Resolver) State(ctx context.Context, credential string) (entity.SessionState, error) {
	id, err := r.Resolve(ctx, credential)
	switch domain.KindOf(err) {
	case domain.KindNone:
		return entity.Authenticated(*id), nil
	case domain.KindUnauthenticated:
		return entity.Unauthenticated(), err
	default:
		return entity.Pending(), err
	}
}

// Invalidate olvida la identidad cacheada para la credencial (logout o 401).
func (r *Resolver) Invalidate(ctx context.Context, credential string) {
	if r.cache == nil || credential == "" {
		return
	}
	if err := r.cache.Delete(ctx, cacheKey(credential)); err != nil {
		r.log.Debug().Err(err).Msg("invalidar caché de sesión")
	}
}

func (r *Resolver) identityFrom(me *dto.MeResponse) *entity.SessionIdentity {
	tier, ok := entity.ParsePlanTier(me.PlanTier)
	if !ok {
		r.log.Debug().Str("plan_tier", me.PlanTier).Msg("plan desconocido, se asume BASIC")
	}
	fullName := ""
	if me.FullName != nil {
		fullName = *me.FullName
	}
	return &entity.SessionIdentity{
		UserID:   string(me.ID),
		Email:    me.Email,
		FullName: fullName,
		PlanTier: tier,
		IsActive: me.IsActive,
		IsAdmin:  access.IsAdministrator(me.Email, r.cfg.AdminEmail),
	}
}

func (r *Resolver) cached(ctx context.Context, credential string) (*entity.SessionIdentity, bool) {
	if r.cache == nil || r.cfg.CacheTTL <= 0 {
		return nil, false
	}
	raw, ok, err := r.cache.Get(ctx, cacheKey(credential))
	if err != nil || !ok {
		return nil, false
	}
	var id entity.SessionIdentity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, false
	}
	return &id, true
}

func (r *Resolver) store(ctx context.Context, credential string, id *entity.SessionIdentity) {
	if r.cache == nil || r.cfg.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKey(credential), raw, r.cfg.CacheTTL); err != nil {
		r.log.Debug().Err(err).Msg("guardar sesión en caché")
	}
}

// cacheKey nunca usa el token en claro como clave.
func cacheKey(credential string) string {
	sum := blake2b.Sum256([]byte(credential))
	return "session:" + hex.EncodeToString(sum[:])
}

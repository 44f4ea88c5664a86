// Package composer decide, por ruta, tenant y sesión, qué bloques de UI montar.
// Es lógica de selección declarativa; no renderiza nada.
package composer

import (
	"sort"
	"strings"

	"github.com/jhoicas/partner-portal/internal/application/catalog"
	"github.com/jhoicas/partner-portal/internal/application/guard"
	"github.com/jhoicas/partner-portal/internal/domain"
	"github.com/jhoicas/partner-portal/internal/domain/access"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// Input todo lo que el compositor necesita para una ruta.
type Input struct {
	Tenant        entity.TenantConfig
	Session       entity.SessionState
	Route         string
	DemoRole      entity.DemoRole
	BackendOnline bool
}

// Composition resultado: o una redirección (sin bloques) o la lista ordenada de bloques.
type Composition struct {
	Route      string
	RedirectTo string
	NotFound   bool
	Blocks     []Block
}

// IsRedirect informa si la composición es una instrucción de redirección.
func (c Composition) IsRedirect() bool { return c.RedirectTo != "" }

// Composer compositor de vistas.
type Composer struct {
	routes  guard.Routes
	catalog *catalog.Provider
	pages   map[string][]item
}

// New construye el compositor con el registro de páginas del producto.
func New(routes guard.Routes, cat *catalog.Provider) *Composer {
	c := &Composer{routes: routes, catalog: cat}
	c.pages = c.registerPages()
	return c
}

type composeCtx struct {
	in       Input
	identity *entity.SessionIdentity
	pending  bool
	gated    bool // false en rutas públicas: se omite el gate de rol/plan
	appID    string
	entry    entity.CatalogEntry
	catalog  *catalog.Provider
}

// Compose aplica, en este orden: rutas públicas sin gate; protegida sin identidad → redirección;
// filtro de módulos del tenant + gate; slots exclusivos; orden del catálogo.
func (c *Composer) Compose(in Input) Composition {
	route := normalize(in.Route)
	out := Composition{Route: route}
	kind := c.routes.Classify(route)

	ctx := &composeCtx{in: in, catalog: c.catalog}

	switch kind {
	case guard.RoutePublic, guard.RouteAuth:
		ctx.gated = false
	case guard.RouteProtected:
		switch in.Session.Status {
		case entity.SessionAuthenticated:
			if in.Session.Identity == nil {
				out.RedirectTo = c.routes.LoginPath
				return out
			}
			ctx.identity = in.Session.Identity
		case entity.SessionPending:
			ctx.pending = true
		default:
			out.RedirectTo = c.routes.LoginPath
			return out
		}
		ctx.gated = true
	default:
		return out
	}

	key, appID := pageKey(route)
	page, ok := c.pages[key]
	if !ok {
		out.NotFound = true
		out.Blocks = []Block{notFoundBlock("route", route)}
		return out
	}
	if key == guard.PathDemo {
		if appID == "" {
			out.NotFound = true
			out.Blocks = []Block{notFoundBlock("app", "")}
			return out
		}
		entry, err := c.catalog.Find(appID)
		if domain.KindOf(err) == domain.KindNotFound {
			out.NotFound = true
			out.Blocks = []Block{notFoundBlock("app", appID)}
			return out
		}
		ctx.appID = appID
		ctx.entry = entry
	}

	if ctx.pending {
		out.Blocks = append(out.Blocks, Block{
			ID:    "session_pending",
			Slot:  SlotNotice,
			Props: map[string]any{"retry": true},
		})
	}
	if ctx.identity != nil && !ctx.identity.IsActive {
		out.Blocks = append(out.Blocks, Block{ID: "account_inactive", Slot: SlotNotice})
	}

	for _, it := range page {
		out.Blocks = append(out.Blocks, c.expand(ctx, it)...)
	}
	return out
}

func (c *Composer) expand(ctx *composeCtx, it item) []Block {
	switch {
	case it.block != nil:
		if b, ok := ctx.mount(*it.block); ok {
			return []Block{b}
		}
	case it.exclusive != nil:
		return []Block{ctx.choose(*it.exclusive)}
	case it.dynamic != nil:
		return it.dynamic(ctx)
	}
	return nil
}

// mount aplica el filtro de módulo del tenant y, en rutas protegidas, el gate.
func (ctx *composeCtx) mount(spec blockSpec) (Block, bool) {
	if spec.module != "" && !ctx.in.Tenant.HasModule(spec.module) {
		return Block{}, false
	}
	if ctx.gated && !spec.req.IsNone() && !access.CanAccess(ctx.identity, spec.req) {
		return Block{}, false
	}
	return ctx.build(spec), true
}

// choose garantiza exactamente un bloque por slot exclusivo. Si el slot depende de un
// módulo deshabilitado, el slot entero se sustituye por su fallback.
func (ctx *composeCtx) choose(spec exclusiveSpec) Block {
	if ctx.pending {
		return Block{ID: PlaceholderID, Slot: spec.slot, Props: map[string]any{"loading": true}}
	}
	primary := spec.primary
	primary.slot = spec.slot
	fallback := spec.fallback
	fallback.slot = spec.slot

	moduleOK := spec.module == "" || ctx.in.Tenant.HasModule(spec.module)
	if moduleOK && (!ctx.gated || access.CanAccess(ctx.identity, primary.req)) {
		return ctx.build(primary)
	}
	return ctx.build(fallback)
}

func (ctx *composeCtx) build(spec blockSpec) Block {
	b := Block{ID: spec.id, Slot: spec.slot, Module: spec.module}
	if spec.props != nil {
		b.Props = spec.props(ctx)
	}
	return b
}

// OrderCatalog coloca primero las entradas flagship conservando el orden relativo (orden estable).
func OrderCatalog(entries []entity.CatalogEntry) []entity.CatalogEntry {
	out := make([]entity.CatalogEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsFlagship && !out[j].IsFlagship
	})
	return out
}

func notFoundBlock(kind, ref string) Block {
	return Block{ID: "not_found", Slot: SlotMain, Props: map[string]any{"kind": kind, "ref": ref}}
}

func normalize(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	if route == "" {
		return guard.PathHome
	}
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
	}
	return route
}

// pageKey separa /demo/:appId en la clave de página y el parámetro.
func pageKey(route string) (key, appID string) {
	if route == guard.PathDemo {
		return guard.PathDemo, ""
	}
	if rest, ok := strings.CutPrefix(route, guard.PathDemo+"/"); ok {
		return guard.PathDemo, rest
	}
	return route, ""
}

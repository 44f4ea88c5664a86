// Package guard decide, antes de renderizar, si una navegación se permite o se redirige.
package guard

import "strings"

// RouteKind clase de ruta.
type RouteKind int

const (
	RoutePublic RouteKind = iota
	RouteAuth
	RouteProtected
	// RouteExempt assets estáticos y la frontera /api: nunca pasan por el guard.
	RouteExempt
)

func (k RouteKind) String() string {
	switch k {
	case RouteAuth:
		return "auth"
	case RouteProtected:
		return "protected"
	case RouteExempt:
		return "exempt"
	default:
		return "public"
	}
}

// Rutas conocidas.
const (
	PathHome       = "/"
	PathLogin      = "/login"
	PathRegister   = "/register"
	PathDashboard  = "/dashboard"
	PathAutomation = "/automation"
	PathSettings   = "/settings"
	PathSoftware   = "/software"
	PathDemo       = "/demo"
	PathDataMining = "/data-mining"
)

// Routes tabla de clasificación. Los prefijos protegidos cubren sub-rutas (/demo/:appId).
type Routes struct {
	Public          []string
	Auth            []string
	Protected       []string
	ExemptPrefixes  []string
	LoginPath       string
	AuthLandingPath string
}

// DefaultRoutes superficie de rutas del producto.
func DefaultRoutes() Routes {
	return Routes{
		Public:          []string{PathHome},
		Auth:            []string{PathLogin, PathRegister},
		Protected:       []string{PathDashboard, PathAutomation, PathSettings, PathSoftware, PathDemo, PathDataMining},
		ExemptPrefixes:  []string{"/api/", "/static/", "/favicon.ico", "/robots.txt", "/healthz", "/metrics", "/docs"},
		LoginPath:       PathLogin,
		AuthLandingPath: PathDashboard,
	}
}

// Classify clasifica un path. Cualquier ruta no declarada se trata como protegida.
func (r Routes) Classify(path string) RouteKind {
	if path == "" {
		path = PathHome
	}
	for _, p := range r.ExemptPrefixes {
		if matchesSegment(path, p) {
			return RouteExempt
		}
	}
	clean := path
	if len(clean) > 1 {
		clean = strings.TrimRight(clean, "/")
	}
	for _, p := range r.Public {
		if clean == p {
			return RoutePublic
		}
	}
	for _, p := range r.Auth {
		if clean == p {
			return RouteAuth
		}
	}
	return RouteProtected
}

// Paths primer segmento de cada ruta declarada, sin duplicados. Acota etiquetas de métricas.
func (r Routes) Paths() []string {
	seen := map[string]bool{}
	var out []string
	groups := [][]string{r.Public, r.Auth, r.Protected, r.ExemptPrefixes}
	for _, g := range groups {
		for _, p := range g {
			seg := firstSegment(p)
			if !seen[seg] {
				seen[seg] = true
				out = append(out, seg)
			}
		}
	}
	return out
}

func firstSegment(p string) string {
	trimmed := strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return "/" + trimmed
}

// matchesSegment compara por segmento completo: "/docs" cubre "/docs" y "/docs/x", no "/docsx".
func matchesSegment(path, prefix string) bool {
	base := strings.TrimSuffix(prefix, "/")
	if base == "" {
		return false
	}
	return path == base || strings.HasPrefix(path, base+"/")
}

// Outcome resultado de la decisión.
type Outcome int

const (
	Allow Outcome = iota
	Redirect
)

// Decision decisión del guard; RedirectTo solo tiene valor con Redirect.
type Decision struct {
	Outcome    Outcome
	RedirectTo string
}

// Decide tabla completa {autenticado, no autenticado} × {pública, auth, protegida}.
// Pura: no tiene más efecto que la decisión devuelta.
func (r Routes) Decide(authenticated bool, kind RouteKind) Decision {
	switch kind {
	case RouteExempt, RoutePublic:
		return Decision{Outcome: Allow}
	case RouteAuth:
		if authenticated {
			return Decision{Outcome: Redirect, RedirectTo: r.AuthLandingPath}
		}
		return Decision{Outcome: Allow}
	case RouteProtected:
		if authenticated {
			return Decision{Outcome: Allow}
		}
		return Decision{Outcome: Redirect, RedirectTo: r.LoginPath}
	}
	// Clase desconocida: fail-closed.
	return Decision{Outcome: Redirect, RedirectTo: r.LoginPath}
}

// Package metrics expone contadores Prometheus del portal.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "partner_portal"

// OtherPath etiqueta para rutas fuera de la superficie declarada.
const OtherPath = "other"

// Metrics agrupa los colectores sobre un registro propio (uno por instancia del servidor).
type Metrics struct {
	Registry *prometheus.Registry

	guardDecisions     *prometheus.CounterVec
	sessionResolutions *prometheus.CounterVec
	actions            *prometheus.CounterVec
	backendOnline      prometheus.Gauge
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec

	paths map[string]struct{}
}

// New registra los colectores. withRuntime añade los colectores de proceso y Go.
// knownPaths son los primeros segmentos admitidos como etiqueta path; el resto cuenta como OtherPath.
func New(withRuntime bool, knownPaths ...string) *Metrics {
	paths := map[string]struct{}{"/": {}}
	for _, p := range knownPaths {
		paths[firstSegment(p)] = struct{}{}
	}
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		paths:    paths,
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "guard",
			Name:      "decisions_total",
			Help:      "Decisiones del route guard por tipo de ruta y resultado.",
		}, []string{"kind", "outcome"}),
		sessionResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "resolutions_total",
			Help:      "Resoluciones de sesión por resultado.",
		}, []string{"outcome"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "actions",
			Name:      "runs_total",
			Help:      "Acciones gateadas por nombre y resultado.",
		}, []string{"action", "outcome"}),
		backendOnline: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "online",
			Help:      "1 si la última sonda de salud del backend tuvo éxito.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "path"}),
	}
	m.Registry.MustRegister(
		m.guardDecisions,
		m.sessionResolutions,
		m.actions,
		m.backendOnline,
		m.httpRequests,
		m.httpDuration,
	)
	if withRuntime {
		m.Registry.MustRegister(
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			prometheus.NewGoCollector(),
		)
	}
	return m
}

// Handler devuelve el handler HTTP de exposición.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// GuardDecision cuenta una decisión del guard.
func (m *Metrics) GuardDecision(kind, outcome string) {
	m.guardDecisions.WithLabelValues(kind, outcome).Inc()
}

// SessionResolution cuenta una resolución de sesión (ok, unauthenticated, transient...).
func (m *Metrics) SessionResolution(outcome string) {
	m.sessionResolutions.WithLabelValues(outcome).Inc()
}

// ActionRun cuenta una acción gateada.
func (m *Metrics) ActionRun(action, outcome string) {
	m.actions.WithLabelValues(action, outcome).Inc()
}

// SetBackendOnline actualiza el gauge de disponibilidad.
func (m *Metrics) SetBackendOnline(online bool) {
	if online {
		m.backendOnline.Set(1)
		return
	}
	m.backendOnline.Set(0)
}

// ObserveRequest registra una petición HTTP.
func (m *Metrics) ObserveRequest(method, path string, status int, d time.Duration) {
	p := m.CanonicalPath(path)
	method = strings.ToUpper(method)
	m.httpRequests.WithLabelValues(method, p, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, p).Observe(d.Seconds())
}

// CanonicalPath reduce la ruta a su primer segmento; si no es conocido devuelve OtherPath.
func (m *Metrics) CanonicalPath(raw string) string {
	seg := firstSegment(raw)
	if _, ok := m.paths[seg]; ok {
		return seg
	}
	return OtherPath
}

func firstSegment(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	first, _, _ := strings.Cut(trimmed, "/")
	return "/" + first
}

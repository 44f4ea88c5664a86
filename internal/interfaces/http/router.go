package http

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/partner-portal/internal/application/composer"
	"github.com/jhoicas/partner-portal/internal/application/guard"
	"github.com/jhoicas/partner-portal/internal/application/health"
	"github.com/jhoicas/partner-portal/internal/application/session"
	"github.com/jhoicas/partner-portal/internal/application/usecase"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
	"github.com/jhoicas/partner-portal/internal/infrastructure/metrics"
	"github.com/jhoicas/partner-portal/pkg/logger"
)

// backendMonitor lo implementa *health.Monitor.
type backendMonitor interface {
	Online() bool
	Snapshot() health.Status
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName          string
	Tenant           entity.TenantConfig
	Routes           guard.Routes
	Composer         *composer.Composer
	Resolver         *session.Resolver
	Actions          *usecase.ActionService
	Monitor          backendMonitor
	Metrics          *metrics.Metrics
	Log              *logger.Logger
	Cookie           CookieConfig
	BackendURL       string // destino del proxy /api/*; vacío = sin proxy
	CORSAllowOrigins string
	StaticDir        string
	SwaggerFile      string
}

// MetricPaths superficie admitida como etiqueta path: rutas del guard más los endpoints del shell.
func MetricPaths(routes guard.Routes) []string {
	return append(routes.Paths(), "/session", "/logout", "/actions")
}

// NewApp crea la aplicación Fiber con el middleware común y registra las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New(false, MetricPaths(deps.Routes)...)
	}

	// Immutable: los valores de Params/Path/Method se retienen como etiquetas de métricas.
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(deps.Log.Named("http"), deps.Metrics))
	app.Use(corsMiddleware(deps.CORSAllowOrigins))

	// Swagger UI en local: http://localhost:<port>/docs
	if deps.SwaggerFile != "" && fileExists(deps.SwaggerFile) {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: deps.SwaggerFile,
			Path:     "docs",
			Title:    "Partner Portal",
		}))
	}

	Router(app, deps)
	return app
}

// Router registra las rutas. Orden: infraestructura, assets, proxy, API del shell y, al final,
// el catch-all de páginas con el guard.
func Router(app *fiber.App, deps RouterDeps) {
	healthHandler := NewHealthHandler(deps.AppName, deps.Tenant.ID, deps.Monitor)
	app.Get("/healthz", healthHandler.Get)
	app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))

	if deps.StaticDir != "" {
		app.Static("/static", deps.StaticDir)
		app.Static("/favicon.ico", filepath.Join(deps.StaticDir, "favicon.ico"))
		app.Static("/robots.txt", filepath.Join(deps.StaticDir, "robots.txt"))
	}

	credential := CredentialMiddleware(deps.Cookie)

	if deps.BackendURL != "" {
		app.All("/api/*", credential, backendProxy(deps.BackendURL))
	}

	sessionHandler := NewSessionHandler(deps.Resolver, deps.Routes, deps.Cookie, deps.Metrics)
	app.Get("/session", credential, sessionHandler.Get)
	app.Post("/logout", credential, sessionHandler.Logout)

	actionHandler := NewActionHandler(deps.Actions, deps.Resolver, deps.Cookie, deps.Metrics, deps.Log.Named("actions"))
	app.Post("/actions/:action", credential, actionHandler.Run)

	viewHandler := NewViewHandler(deps.Composer, deps.Resolver, deps.Routes, deps.Tenant,
		deps.Monitor, deps.Cookie, deps.Metrics, deps.Log.Named("views"))
	pageGuard := GuardMiddleware(deps.Routes, deps.Metrics)
	app.Get("/", credential, pageGuard, viewHandler.Page)
	app.Get("/*", credential, pageGuard, viewHandler.Page)
}

// backendProxy reenvía /api/* sin tocar al backend. Si el navegador solo trae la
// cookie, se añade el header Authorization que espera el backend.
func backendProxy(baseURL string) fiber.Handler {
	base := strings.TrimRight(baseURL, "/")
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			if cred := GetCredential(c); cred != "" {
				c.Request().Header.Set(fiber.HeaderAuthorization, "Bearer "+cred)
			}
		}
		if err := proxy.Do(c, base+c.OriginalURL()); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "backend no disponible")
		}
		c.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}

func corsMiddleware(origins string) fiber.Handler {
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

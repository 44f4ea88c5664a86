package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/partner-portal/internal/application/catalog"
	"github.com/jhoicas/partner-portal/internal/application/composer"
	"github.com/jhoicas/partner-portal/internal/application/guard"
	"github.com/jhoicas/partner-portal/internal/application/health"
	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/internal/application/registry"
	"github.com/jhoicas/partner-portal/internal/application/session"
	"github.com/jhoicas/partner-portal/internal/application/usecase"
	"github.com/jhoicas/partner-portal/internal/infrastructure/backend"
	"github.com/jhoicas/partner-portal/internal/infrastructure/cache"
	"github.com/jhoicas/partner-portal/internal/infrastructure/metrics"
	"github.com/jhoicas/partner-portal/internal/infrastructure/postgres"
	"github.com/jhoicas/partner-portal/internal/infrastructure/staticcfg"
	httpRouter "github.com/jhoicas/partner-portal/internal/interfaces/http"
	"github.com/jhoicas/partner-portal/pkg/config"
	"github.com/jhoicas/partner-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tenant_id", cfg.Tenant.ID).
		Str("source", cfg.Source.Kind).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Definiciones: YAML embebido o PostgreSQL, una sola vez al arrancar.
	var source ports.DefinitionSource = staticcfg.NewEmbeddedSource()
	if cfg.Source.Kind == config.SourcePostgres {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		source = postgres.NewDefinitionsSource(pool)
	}
	defs, err := source.LoadDefinitions(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar definiciones")
	}

	reg, err := registry.New(defs.Tenants, cfg.Tenant.DefaultID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("registro de tenants")
	}
	tenant := reg.Resolve(cfg.Tenant.ID)
	log.Info().Str("tenant", tenant.ID).Msg("tenant activo")

	cat, err := catalog.NewProvider(defs.Catalog, defs.Plans)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo")
	}

	client := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)

	var sessionCache ports.SessionCache
	if cfg.Session.CacheTTL > 0 {
		c, err := cache.New(cfg.Session.CacheMaxBytes)
		if err != nil {
			log.Fatal().Err(err).Msg("caché de sesiones")
		}
		defer c.Close()
		sessionCache = c
	}
	resolver := session.NewResolver(client, sessionCache, session.Config{
		AdminEmail: cfg.Auth.AdminEmail,
		CacheTTL:   cfg.Session.CacheTTL,
	}, log)

	routes := guard.DefaultRoutes()
	m := metrics.New(true, httpRouter.MetricPaths(routes)...)
	monitor := health.NewMonitor(client, cfg.Backend.HealthInterval, log, m.SetBackendOnline)
	monitor.Start(ctx)
	defer monitor.Stop()

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:          cfg.App.Name,
		Tenant:           tenant,
		Routes:           routes,
		Composer:         composer.New(routes, cat),
		Resolver:         resolver,
		Actions:          usecase.NewActionService(client),
		Monitor:          monitor,
		Metrics:          m,
		Log:              log,
		Cookie:           httpRouter.CookieConfig{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure},
		BackendURL:       cfg.Backend.URL,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		StaticDir:        cfg.HTTP.StaticDir,
		SwaggerFile:      cfg.HTTP.SwaggerFile,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

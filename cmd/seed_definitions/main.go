// seed_definitions carga tenants, catálogo y planes en PostgreSQL para CONFIG_SOURCE=postgres.
//
// Uso: go run ./cmd/seed_definitions [ruta/definitions.yaml]
// Sin argumento usa el documento embebido en el binario. La conexión se toma de DATABASE_URL / DB_*.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/partner-portal/internal/application/ports"
	"github.com/jhoicas/partner-portal/internal/infrastructure/postgres"
	"github.com/jhoicas/partner-portal/internal/infrastructure/staticcfg"
	"github.com/jhoicas/partner-portal/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	var src ports.DefinitionSource = staticcfg.NewEmbeddedSource()
	if len(os.Args) > 1 {
		raw, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer YAML: %v\n", err)
			os.Exit(1)
		}
		src = staticcfg.NewSource(raw)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	defs, err := src.LoadDefinitions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar definiciones: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.NewTxRunner(pool).SeedDefinitions(ctx, defs); err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar definiciones: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sembrados %d tenants, %d apps de catálogo y %d planes\n",
		len(defs.Tenants), len(defs.Catalog), len(defs.Plans))
}

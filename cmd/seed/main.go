// seed carga un fixture JSON ({"tabla": [filas]}) en el almacén configurado por STORE_DRIVER.
//
// Uso: go run ./cmd/seed [ruta/fixture.json]
// Por defecto usa seed/demo.json.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jhoicas/refnet-api/internal/infrastructure/bootstrap"
	"github.com/jhoicas/refnet-api/pkg/config"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	path := "seed/demo.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Driver == config.DriverMemory {
		fmt.Fprintln(os.Stderr, "STORE_DRIVER=memory no persiste; use SEED_FILE al arrancar la API")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, closeFn, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer closeFn()

	n, err := bootstrap.LoadFixtureFile(ctx, client, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar %s: %v (filas insertadas: %d)\n", path, err, n)
		os.Exit(1)
	}
	fmt.Printf("Filas insertadas: %d (%s)\n", n, path)
}

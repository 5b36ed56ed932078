// Package bootstrap arma el almacén remoto según la configuración y carga datos de ejemplo.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/infrastructure/memstore"
	"github.com/jhoicas/refnet-api/internal/infrastructure/mongostore"
	"github.com/jhoicas/refnet-api/internal/infrastructure/postgres"
	"github.com/jhoicas/refnet-api/pkg/config"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

// OpenStore conecta el driver elegido en STORE_DRIVER. closeFn libera conexiones y listeners.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (client store.Client, closeFn func(), err error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		listener := postgres.NewListener(pool, postgres.ChangesChannel, log)
		return postgres.NewStore(pool, listener), func() {
			listener.Close()
			pool.Close()
		}, nil

	case config.DriverMongo:
		mc, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		db := mc.Database(cfg.Mongo.DBName)
		closeFn := func() { _ = mc.Disconnect(context.Background()) }
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			closeFn()
			return nil, nil, err
		}
		if cfg.Mongo.Transactions {
			return mongostore.NewTransactional(db, log), closeFn, nil
		}
		log.Warn().Msg("MongoDB sin transacciones: la aprobación de reposiciones corre en modo best-effort")
		return mongostore.New(db, log), closeFn, nil

	case config.DriverMemory:
		mem := memstore.New()
		if cfg.Store.SeedFile != "" {
			n, err := LoadFixtureFile(ctx, mem, cfg.Store.SeedFile)
			if err != nil {
				return nil, nil, err
			}
			log.Info().Int("rows", n).Str("file", cfg.Store.SeedFile).Msg("almacén en memoria precargado")
		}
		return mem, func() {}, nil
	}
	return nil, nil, fmt.Errorf("STORE_DRIVER %q no soportado", cfg.Store.Driver)
}

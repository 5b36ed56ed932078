// @title           RefNet API
// @version         1.0
// @description     API de reposiciones, libro financiero, despachos y reparaciones.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Bearer <token>
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	_ "github.com/jhoicas/refnet-api/docs"
	"github.com/jhoicas/refnet-api/internal/application/dispatch"
	"github.com/jhoicas/refnet-api/internal/application/finance"
	"github.com/jhoicas/refnet-api/internal/application/ledger"
	"github.com/jhoicas/refnet-api/internal/application/live"
	"github.com/jhoicas/refnet-api/internal/application/notify"
	"github.com/jhoicas/refnet-api/internal/application/restock"
	"github.com/jhoicas/refnet-api/internal/domain/store"
	"github.com/jhoicas/refnet-api/internal/infrastructure/bootstrap"
	"github.com/jhoicas/refnet-api/internal/infrastructure/realtime"
	"github.com/jhoicas/refnet-api/internal/infrastructure/storerepo"
	httpRouter "github.com/jhoicas/refnet-api/internal/interfaces/http"
	"github.com/jhoicas/refnet-api/pkg/config"
	"github.com/jhoicas/refnet-api/pkg/logger"
)

func main() {
	_ = godotenv.Load() // .env opcional en desarrollo

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	client, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer closeStore()

	txRunner := storerepo.NewTxRunner(client)
	if !txRunner.Atomic() {
		log.Warn().Msg("almacén sin transacciones: asiento y aprobación se escriben por separado")
	}
	restockRepo := storerepo.NewRestockRepository(client)
	productRepo := storerepo.NewProductRepository(client)
	recordRepo := storerepo.NewFinancialRecordRepository(client)
	dispatchRepo := storerepo.NewDispatchRepository(client)
	orderRepo := storerepo.NewOrderRepository(client)
	repairRepo := storerepo.NewRepairRepository(client)

	// Avisos: WebSocket al usuario + log.
	hub := realtime.NewHub(log)
	notifier := notify.Multi{hub, notify.NewLogNotifier(log)}

	ledgerUC := ledger.NewUseCase(txRunner, restockRepo, productRepo, recordRepo, notifier, log)
	financeUC := finance.NewUseCase(orderRepo, repairRepo, notifier, log)
	restockUC := restock.NewUseCase(txRunner, restockRepo, productRepo, notifier, log)
	dispatchUC := dispatch.NewUseCase(txRunner, dispatchRepo, notifier, log)

	// Cambios del almacén → clientes WebSocket, que vuelven a pedir la lista afectada.
	feed := live.NewFeed(client, log, hub)
	if err := feed.Start(ctx, store.Tables()...); err != nil {
		log.Error().Err(err).Msg("suscripción a cambios no disponible; los clientes deberán refrescar manualmente")
	}
	defer feed.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RefNet API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   cfg.App.Name,
			"store":     cfg.Store.Driver,
			"atomic":    txRunner.Atomic(),
			"ws_online": hub.Connected(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:   ledgerUC,
		FinanceUC:  financeUC,
		RestockUC:  restockUC,
		DispatchUC: dispatchUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	// WebSocket en su propio listener: fasthttp no permite el hijack que necesita gorilla.
	rt := &http.Server{
		Addr:              cfg.Realtime.Addr(),
		Handler:           realtime.NewMux(&realtime.Handler{Hub: hub, JWTSecret: cfg.JWT.Secret}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	go func() {
		log.Info().Str("addr", rt.Addr).Msg("servidor realtime escuchando")
		if err := rt.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("servidor realtime finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := rt.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor realtime")
	}

	log.Info().Msg("aplicación detenida")
}

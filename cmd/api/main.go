package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalytics "github.com/froesalexandre94-DC/zws/internal/application/analytics"
	"github.com/froesalexandre94-DC/zws/internal/application/usecase"
	"github.com/froesalexandre94-DC/zws/internal/domain/inventory"
	"github.com/froesalexandre94-DC/zws/internal/domain/repository"
	"github.com/froesalexandre94-DC/zws/internal/infrastructure/memory"
	"github.com/froesalexandre94-DC/zws/internal/infrastructure/postgres"
	httpRouter "github.com/froesalexandre94-DC/zws/internal/interfaces/http"
	"github.com/froesalexandre94-DC/zws/pkg/config"
	"github.com/froesalexandre94-DC/zws/pkg/logger"
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
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	var (
		salesRepo repository.SalesRepository
		stockRepo repository.StockRepository
	)
	switch cfg.DB.Driver {
	case "memory":
		// Modo desarrollo: datos en memoria, se pierden al reiniciar.
		salesRepo = memory.NewSalesRepository()
		stockRepo = memory.NewStockRepository()
	default:
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		salesRepo = postgres.NewSalesRepository(pool, cfg.DB.SalesTable)
		stockRepo = postgres.NewStockRepository(pool, cfg.DB.StockTable)
	}

	dashboardUC := appanalytics.NewDashboardUseCase(salesRepo, stockRepo, inventory.Options{
		TopN:              cfg.Dashboard.TopSoldLimit,
		LowStockThreshold: cfg.Dashboard.LowStockThreshold,
	})
	stockUC := usecase.NewStockUseCase(stockRepo)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		SwaggerEnabled: cfg.HTTP.SwaggerEnabled,
		SwaggerFile:    "./docs/swagger.json",
	}, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		StockUC:     stockUC,
		Logger:      log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
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

	log.Info().Msg("aplicación detenida")
}

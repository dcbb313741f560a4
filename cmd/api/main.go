package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/marvinbvivass/admin-sub001/internal/application/sales"
	"github.com/marvinbvivass/admin-sub001/internal/application/settlement"
	"github.com/marvinbvivass/admin-sub001/internal/application/usecase"
	"github.com/marvinbvivass/admin-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/marvinbvivass/admin-sub001/internal/interfaces/http"
	"github.com/marvinbvivass/admin-sub001/pkg/config"
	"github.com/marvinbvivass/admin-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	rateRepo := postgres.NewRateRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	settlementRepo := postgres.NewSettlementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, stockRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	rateUC := usecase.NewRateUseCase(rateRepo)

	commitSaleUC := sales.NewCommitSaleUseCase(
		txRunner, clientRepo, vehicleRepo, stockRepo, saleRepo, rateRepo,
	)
	closeDayUC := settlement.NewCloseDayUseCase(saleRepo, settlementRepo, log)

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
		Title:    "Admin Sub001 API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:   clientUC,
		VehicleUC:  vehicleUC,
		ProductUC:  productUC,
		RateUC:     rateUC,
		CommitSale: commitSaleUC,
		CloseDay:   closeDayUC,
		JWTSecret:  cfg.JWT.Secret,
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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	appanalytics "github.com/tu-usuario/retail-pos/internal/application/analytics"
	"github.com/tu-usuario/retail-pos/internal/application/auth"
	appcheckout "github.com/tu-usuario/retail-pos/internal/application/checkout"
	"github.com/tu-usuario/retail-pos/internal/application/usecase"
	infrapdf "github.com/tu-usuario/retail-pos/internal/infrastructure/pdf"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/retail-pos/internal/infrastructure/redisstore"
	httpRouter "github.com/tu-usuario/retail-pos/internal/interfaces/http"
	"github.com/tu-usuario/retail-pos/migrations"
	"github.com/tu-usuario/retail-pos/pkg/config"
	"github.com/tu-usuario/retail-pos/pkg/logger"
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

	if err := postgres.RunMigrations(migrations.FS, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, log)
	if err := authUC.SeedAdmin(cfg.Seed.AdminUsername, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed del admin inicial")
	}

	checkoutUC := appcheckout.NewCheckoutUseCase(txRunner, saleRepo, log)
	analyticsUC := appanalytics.NewAnalyticsUseCase(analyticsRepo)
	salesUC := usecase.NewSalesUseCase(analyticsRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	methodUC := usecase.NewPaymentMethodUseCase(methodRepo)
	inventoryUC := usecase.NewInventoryUseCase(productRepo, movementRepo)
	labelsUC := usecase.NewLabelsUseCase(productRepo, infrapdf.NewMarotoLabelGenerator())

	// Sesiones: Redis si está configurado, memoria del proceso si no.
	var sessionStorage fiber.Storage
	if cfg.Redis.Addr != "" {
		store, err := redisstore.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer store.Close()
		sessionStorage = store
	}
	sessions := httpRouter.NewSessionStore(cfg.Session, sessionStorage)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CheckoutUC:  checkoutUC,
		AnalyticsUC: analyticsUC,
		SalesUC:     salesUC,
		ProductUC:   productUC,
		UserUC:      userUC,
		MethodUC:    methodUC,
		InventoryUC: inventoryUC,
		LabelsUC:    labelsUC,
		Sessions:    sessions,
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

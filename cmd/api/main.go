package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	redisstorage "github.com/gofiber/storage/redis/v3"

	_ "github.com/jhoicas/cmedia-api/docs"
	"github.com/jhoicas/cmedia-api/internal/application/auth"
	"github.com/jhoicas/cmedia-api/internal/application/usecase"
	"github.com/jhoicas/cmedia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cmedia-api/internal/interfaces/http"
	"github.com/jhoicas/cmedia-api/pkg/config"
	"github.com/jhoicas/cmedia-api/pkg/logger"
)

// @title           CMedia API
// @version         1.0
// @description     Backend de planes de servicio y suscripciones de CMedia.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
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

	customerRepo := postgres.NewCustomerRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	planRepo := postgres.NewServicePlanRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)

	authUC := auth.NewAuthUseCase(customerRepo, staffRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	planUC := usecase.NewServicePlanUseCase(planRepo, catalogRepo)
	subscriptionUC := usecase.NewSubscriptionUseCase(subscriptionRepo, planRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(log, cfg.App.IsDevelopment()),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(httpRouter.CompatMiddleware(log))

	// Rate limit en /auth. Con Redis configurado el contador es compartido
	// entre instancias; sin Redis queda en memoria.
	limiterCfg := limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() != "/auth/login" && c.Path() != "/auth/register" && c.Path() != "/auth/staff/login"
		},
	}
	if cfg.Redis.Enabled() {
		limiterCfg.Storage = redisstorage.New(redisstorage.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			Database: cfg.Redis.Database,
		})
	}
	app.Use(limiter.New(limiterCfg))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CMedia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		PlanUC:         planUC,
		SubscriptionUC: subscriptionUC,
		CustomerUC:     customerUC,
		StaffUC:        staffUC,
		JWTSecret:      cfg.JWT.Secret,
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

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
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/rh-admin-api/internal/application/auth"
	"github.com/jhoicas/rh-admin-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/rh-admin-api/internal/infrastructure/pdf"
	"github.com/jhoicas/rh-admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/rh-admin-api/internal/interfaces/http"
	"github.com/jhoicas/rh-admin-api/pkg/config"
	"github.com/jhoicas/rh-admin-api/pkg/hash"
	"github.com/jhoicas/rh-admin-api/pkg/logger"
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
		Str("hash_scheme", cfg.Auth.HashScheme).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hasher, err := hash.ForScheme(cfg.Auth.HashScheme)
	if err != nil {
		log.Fatal().Err(err).Msg("esquema de hash")
	}

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, hasher)
	userUC := usecase.NewUserUseCase(userRepo, employeeRepo, hasher)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, userRepo)
	reportUC := usecase.NewReportUseCase(employeeRepo, infrapdf.NewMarotoRosterGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RH Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		EmployeeUC: employeeUC,
		ReportUC:   reportUC,
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

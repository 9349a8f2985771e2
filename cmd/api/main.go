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
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	appdashboard "github.com/tu-usuario/crm-pro/internal/application/dashboard"
	appteam "github.com/tu-usuario/crm-pro/internal/application/team"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/objectstore"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/internal/session"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	// Registro de sesiones en Redis + snapshot reactivo en memoria.
	// El middleware consulta el snapshot; los eventos lo mantienen al día.
	registry, err := session.NewRegistry(cfg.Redis.URL, cfg.Redis.Channel)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer registry.Close()
	if err := registry.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping a Redis")
	}
	sessionStore := session.NewStore()
	sessionStore.Subscribe(func(ev session.Event) {
		log.Debug().
			Str("kind", ev.Kind).
			Str("session_id", ev.SessionID).
			Msg("evento de sesión")
	})
	registry.Listen(ctx, sessionStore)

	store, err := objectstore.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al storage de objetos")
	}

	tenantRepo := postgres.NewTenantRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	dealRepo := postgres.NewDealRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	attachmentRepo := postgres.NewAttachmentRepository(pool)

	authUC := auth.NewAuthUseCase(profileRepo, roleRepo, tenantRepo, registry, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	dashboardUC := appdashboard.NewDashboardUseCase(projectRepo, taskRepo)
	teamUC := appteam.NewTeamUseCase(roleRepo, profileRepo)
	profileUC := usecase.NewProfileUseCase(profileRepo, store)
	projectUC := usecase.NewProjectUseCase(projectRepo, taskRepo)
	crmUC := usecase.NewCRMUseCase(accountRepo, contactRepo, dealRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	attachmentUC := usecase.NewAttachmentUseCase(attachmentRepo, store)

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
		Title:    "CRM Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DashboardUC:  dashboardUC,
		TeamUC:       teamUC,
		ProfileUC:    profileUC,
		ProjectUC:    projectUC,
		CRMUC:        crmUC,
		ActivityUC:   activityUC,
		AttachmentUC: attachmentUC,
		Sessions:     sessionStore,
		JWTSecret:    cfg.JWT.Secret,
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

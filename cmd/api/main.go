package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/vendas-dashboard/internal/application/auth"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
	"github.com/jhoicas/vendas-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/vendas-dashboard/internal/infrastructure/storage"
	"github.com/jhoicas/vendas-dashboard/internal/infrastructure/supabase"
	httpRouter "github.com/jhoicas/vendas-dashboard/internal/interfaces/http"
	"github.com/jhoicas/vendas-dashboard/pkg/config"
	"github.com/jhoicas/vendas-dashboard/pkg/logger"
)

// pruneInterval frecuencia con la que se cierran las sesiones de tokens vencidos.
const pruneInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	remote := postgres.NewRemoteStore(pool, log.Component("remote_store"))
	identity := supabase.NewIdentity(cfg.Supabase.JWTSecret, log.Zerolog())
	policy := auth.NewPolicy(cfg.App.AdminEmail)

	// Imágenes: solo si hay bucket configurado; sin él, la subida responde 503.
	var images repository.ImageStorage
	if cfg.Storage.Enabled() {
		s3Images, err := storage.New(ctx, storage.Config{
			Bucket:          cfg.Storage.Bucket,
			Region:          cfg.Storage.Region,
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			PublicBaseURL:   cfg.Supabase.URL,
		}, log.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento de imágenes")
		}
		images = s3Images
	} else {
		log.Warn().Msg("STORAGE_BUCKET vacío: gestión de imágenes deshabilitada")
	}

	manager := auth.NewManager(auth.ManagerDeps{
		Sessions:    identity,
		Roles:       auth.NewProfileRoles(remote),
		Remote:      remote,
		Images:      images,
		Policy:      policy,
		Log:         log.Zerolog(),
		LoadTimeout: cfg.App.LoadTimeout,
	})
	defer manager.Close()

	go func() {
		ticker := time.NewTicker(pruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				identity.PruneExpired()
			}
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:  cfg.App.Name,
		Sessions: identity,
		Manager:  manager,
		Policy:   policy,
		Log:      log.Component("http"),
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

// @title Goal-tracker API
// @description API for goal-tracker app "Goalkeeper"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/goalkeeper/internal/api"
	"github.com/limbo/goalkeeper/internal/repository"
	"github.com/limbo/goalkeeper/internal/service"
	"github.com/limbo/goalkeeper/pkg/cleanup"
	"github.com/limbo/goalkeeper/pkg/config"
	jwtservice "github.com/limbo/goalkeeper/pkg/jwt_service"
	"github.com/limbo/goalkeeper/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger.Init(cfg.GetStringOr("APP_ENV", "production") == "development", cfg.GetString("SENTRY_DSN"))
	defer cleanup.CleanUp()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	if cfg.GetBool("RUN_MIGRATIONS", true) {
		if err := repository.MigrateConnString(dbCfg.ConnString()); err != nil {
			log.Println("Migrations error: " + err.Error())
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	pool, err := repository.NewPool(ctx, &dbCfg)
	cancel()
	if err != nil {
		log.Println("Database error: " + err.Error())
		return
	}

	goalsRepo := repository.NewGoalsRepo(pool)
	sectionsRepo := repository.NewSectionsRepo(pool)
	streaksRepo := repository.NewStreaksRepo(pool)
	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(repository.NewUsersRepo(pool)),
		GoalsService:    service.NewGoalsService(goalsRepo, sectionsRepo, streaksRepo),
		SectionsService: service.NewSectionsService(sectionsRepo),
		UpdatesService:  service.NewGoalUpdatesService(goalsRepo, repository.NewGoalUpdatesRepo(pool), streaksRepo),
		JwtService:      jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		Location:        cfg.GetLocation("APP_TIMEZONE"),
	})
	httpServer := &http.Server{
		Addr:              cfg.GetStringOr("API_ADDRESS", ":8080"),
		Handler:           serv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		slog.Info("shutting down", slog.String("signal", sig.String()))
	case err := <-errCh:
		slog.Error("server error", slog.String("error", err.Error()))
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetDuration("SHUTDOWN_TIMEOUT", 10*time.Second))
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

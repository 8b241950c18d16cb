package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	auditrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/audit"
	authmethodrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/authmethod"
	carerepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/care"
	catrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/cat"
	feedingrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/feeding"
	foodrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/food"
	summaryrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/summary"
	tokenrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/token"
	userrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/user"
	waterrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/water"
	jwtauth "github.com/whiskerlog/catcare-backend/internal/auth"
	"github.com/whiskerlog/catcare-backend/internal/config"
	authsvc "github.com/whiskerlog/catcare-backend/internal/service/auth"
	catsvc "github.com/whiskerlog/catcare-backend/internal/service/cat"
	diarysvc "github.com/whiskerlog/catcare-backend/internal/service/diary"
	foodsvc "github.com/whiskerlog/catcare-backend/internal/service/food"
	nutritionsvc "github.com/whiskerlog/catcare-backend/internal/service/nutrition"
	usersvc "github.com/whiskerlog/catcare-backend/internal/service/user"
	"github.com/whiskerlog/catcare-backend/internal/transport/middleware"
	"github.com/whiskerlog/catcare-backend/internal/transport/rest"
	"github.com/whiskerlog/catcare-backend/migrations"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and database pool, applies migrations when configured, wires
// up the services and HTTP transport, and serves until SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.MigrateOnStart {
		if err := applyMigrations(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	users := userrepo.New(pool)
	audits := auditrepo.New(pool)
	tokens := tokenrepo.New(pool)
	authMethods := authmethodrepo.New(pool)
	cats := catrepo.New(pool)
	foods := foodrepo.New(pool)
	feedings := feedingrepo.New(pool)
	waters := waterrepo.New(pool)
	cares := carerepo.New(pool)
	summaries := summaryrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services.
	jwtMgr := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, users, tokens, authMethods, tx, jwtMgr, cfg.Auth)
	userService := usersvc.NewService(logger, users, users, audits, tx)
	catService := catsvc.NewService(logger, cats, cfg.Diary)
	foodService := foodsvc.NewService(logger, foods, cfg.Diary)
	nutritionService := nutritionsvc.NewService(
		logger, cats, feedings, waters, cares, summaries, users, tx, cfg.Diary.MaxTrendRangeDays,
	)
	diaryService := diarysvc.NewService(logger, cats, feedings, waters, cares, nutritionService, cfg.Diary)

	// Transport.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	idemGuard := middleware.NewIdempotencyGuard(cfg.Server.IdempotencyTTL)
	defer idemGuard.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:      rest.NewAuthHandler(authService, logger),
		User:      rest.NewUserHandler(userService, logger),
		Cat:       rest.NewCatHandler(catService, logger),
		Food:      rest.NewFoodHandler(foodService, logger),
		Diary:     rest.NewDiaryHandler(diaryService, logger),
		Nutrition: rest.NewNutritionHandler(nutritionService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),

		Validator:   authService,
		Logger:      logger,
		RateLimiter: rateLimiter,
		Idempotency: idemGuard,

		ServerCfg: cfg.Server,
		CORSCfg:   cfg.CORS,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// applyMigrations runs the embedded goose migrations. goose requires a
// *sql.DB, so a short-lived stdlib connection is used instead of the pool.
func applyMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

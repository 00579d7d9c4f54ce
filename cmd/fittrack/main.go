package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	adapthttp "fittrack/internal/adapter/http"
	"fittrack/internal/adapter/memory"
	"fittrack/internal/adapter/postgres"
	"fittrack/internal/adapter/sqlite"
	"fittrack/internal/app"
	"fittrack/internal/config"
	"fittrack/internal/domain"
	"fittrack/internal/logger"
)

type store struct {
	hydration domain.HydrationRepository
	meals     domain.MealRepository
	mealLogs  domain.MealLogRepository
	pinger    adapthttp.Pinger
	close     func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New("fittrack", cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.DBDriver, err)
	}
	defer func() { _ = st.close() }()
	log.Info().Str("driver", cfg.DBDriver).Msg("store ready")

	hydrationSvc := app.NewHydrationService(st.hydration)
	nutritionSvc := app.NewNutritionService(st.meals)
	mealLogSvc := app.NewMealLogService(st.mealLogs)
	trendsSvc := app.NewTrendsService(st.hydration, st.meals)

	h := adapthttp.New(hydrationSvc, nutritionSvc, mealLogSvc, trendsSvc, st.pinger).
		WithLogger(log).
		WithWebDir(cfg.WebDir).
		WithAllowedOrigin(cfg.AllowedOrigin).
		Handler()
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(cfg *config.Config) (*store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &store{
			hydration: db,
			meals:     postgres.NewMealRepo(db),
			mealLogs:  postgres.NewMealLogRepo(db),
			pinger:    db,
			close:     db.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &store{
			hydration: db,
			meals:     sqlite.NewMealRepo(db),
			mealLogs:  sqlite.NewMealLogRepo(db),
			pinger:    db,
			close:     db.Close,
		}, nil
	case config.DriverMemory:
		db := memory.New()
		return &store{
			hydration: db,
			meals:     db.Meals(),
			mealLogs:  db.MealLogs(),
			pinger:    db,
			close:     func() error { return nil },
		}, nil
	}
	return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
}

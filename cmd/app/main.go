package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop/cmd"
	httpin "shop/internal/adapters/in/http"
	"shop/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDB(ctx, config, logger)

	var redisClient redis.Cmdable
	if config.CacheEnabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		defer func() { _ = client.Close() }()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.WarnContext(ctx, "redis ping failed, order cache errors will fall back to the database",
				"addr", config.RedisAddr,
				"error", err,
			)
		}
		redisClient = client
	}

	app := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err := startWebServer(ctx, app, config, logger); err != nil {
		logger.ErrorContext(ctx, "server stopped with error", "error", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	return cmd.LoadConfig(os.Getenv)
}

func mustOpenDB(ctx context.Context, config cmd.Config, logger *slog.Logger) *gorm.DB {
	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = postgres.Migrate(gormDB.WithContext(ctx)); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if config.SeedData {
		seeded, seedErr := postgres.Seed(ctx, gormDB)
		if seedErr != nil {
			log.Fatalf("Failed to seed database: %v", seedErr)
		}
		logger.InfoContext(ctx, "seed data checked", "inserted", seeded)
	}

	return gormDB
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) error {
	e, err := httpin.NewEcho(app.CreateHTTPServer(), config.CORSAllowedOrigins, logger)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening", "port", config.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

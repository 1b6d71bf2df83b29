package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"bakeryops/internal/pkg/config"
	"bakeryops/internal/pkg/dotenv"
	"bakeryops/internal/pkg/postgres"
	"bakeryops/migrations"
	"bakeryops/pkg/logger"
	"bakeryops/pkg/logger/zap_adapter"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// usage: migrate [-command up|down|status|version|redo|reset] [args...]
func main() {
	// разбирается в dotenv.Load вместе с -env
	command := flag.String("command", "up", "goose command")

	zapLogger, err := zap_adapter.NewZapAdapter("bakeryops-migrate", os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger

	if err := dotenv.Load(); err != nil {
		appLogger.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	mainLog := appLogger.With(logger.NewField("command", *command))

	cfg, err := config.LoadDatabase()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), appLogger, cfg, *command, flag.Args()); err != nil {
		mainLog.Error("migration failed", logger.NewField("error", err))
		_ = zapLogger.Sync()
		os.Exit(1) //nolint:gocritic // логгер уже сброшен
	}
	mainLog.Info("migration finished")
}

func run(ctx context.Context, log logger.Logger, cfg *config.Database, command string, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close sql.DB", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

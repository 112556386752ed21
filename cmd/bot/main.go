package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/app"
	"github.com/Freeeeeet/mentor_scheduler/internal/config"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller"
	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/repository"
	"github.com/Freeeeeet/mentor_scheduler/internal/service"
	"github.com/Freeeeeet/mentor_scheduler/internal/submission"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// draftPurgeInterval как часто чистить черновики в памяти
	draftPurgeInterval = 5 * time.Minute

	// submitGuardSlack запас сверх таймаута HTTP на сохранение результата отправки
	submitGuardSlack = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting mentor scheduler bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// База данных
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		return err
	}

	// Репозитории и сервисы
	userRepo := repository.NewUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)

	submitter := submission.New(cfg.SchedulingAPIURL, cfg.SchedulingAPIToken, cfg.SubmitTimeout)

	userService := service.NewUserService(userRepo, logger)
	profileService := service.NewProfileService(profileRepo, logger)
	bookingService := service.NewBookingService(profileRepo, submitter, logger)

	// Хранилище черновиков: Redis, если указан адрес, иначе память процесса
	var drafts state.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return err
		}
		drafts = state.NewRedisStore(rdb, cfg.DraftTTL)
		logger.Info("Using Redis draft store", zap.String("addr", cfg.RedisAddr))
	} else {
		manager := state.NewManager(cfg.DraftTTL)
		drafts = manager

		scheduler := app.NewScheduler(manager, draftPurgeInterval, logger)
		scheduler.Start(ctx)
		defer scheduler.Stop()
		logger.Info("Using in-memory draft store", zap.Duration("ttl", cfg.DraftTTL))
	}

	// Telegram
	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(botInstance, userService, profileService, bookingService, drafts, cfg.SubmitTimeout+submitGuardSlack, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		return err
	}

	return botController.Start(ctx)
}

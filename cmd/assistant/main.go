// cmd/assistant/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"nexora-assistant/internal/assistant"
	"nexora-assistant/internal/assistant/corpus"
	"nexora-assistant/internal/assistant/memo"
	"nexora-assistant/internal/assistant/qa"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/common/config"
	"nexora-assistant/internal/common/database"
	apperrors "nexora-assistant/internal/common/errors"
	"nexora-assistant/internal/common/logger"
	"nexora-assistant/internal/common/observability"
	"nexora-assistant/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting assistant",
		zap.String("name", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Document store with retry ---
	var mongoClient *database.MongoClient
	err = retryWithBackoff(func() error {
		var err error
		mongoClient, err = database.NewMongo(cfg.Database.Mongo)
		if err != nil {
			return apperrors.NewStoreConnectionFailedError(err)
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx); err != nil {
			return apperrors.NewStoreConnectionFailedError(err)
		}
		return nil
	}, 5, 2*time.Second, zapLog, "MongoDB connection")
	if err != nil {
		zapLog.Fatal("mongo init failed", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		mongoClient.Close(ctx)
	}()

	// --- Answer memo; degraded mode without Redis is acceptable ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return redisClient.Ping(pingCtx)
	}, 3, time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Warn("redis unavailable, running without answer memo", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	st := store.NewMongoStore(mongoClient.Database, cfg.Assistant.GetQueryTimeout())
	engine := qa.NewEngine(st, log)
	corpusCache := corpus.NewCache(st, log)

	var answerMemo *memo.Memo
	if redisClient != nil {
		answerMemo = memo.New(redisClient.GetClient(), cfg.Assistant.GetMemoTTL(), log)
	} else {
		answerMemo = memo.New(nil, 0, log)
	}

	svc := assistant.NewService(engine, corpusCache, answerMemo, log, obs, cfg.Assistant.SimilarityThreshold)

	srv, err := server.New(svc, log, cfg.HTTP.Address)
	if err != nil {
		zapLog.Fatal("server init failed", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		zapLog.Fatal("http server failed", zap.Error(err))
	case sig := <-stop:
		zapLog.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}

	zapLog.Info("assistant stopped")
}

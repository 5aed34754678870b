package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/analysis/emotion"
	"github.com/soulconnect/backend/internal/config"
	"github.com/soulconnect/backend/internal/handler"
	"github.com/soulconnect/backend/internal/service/ai"
	"github.com/soulconnect/backend/internal/service/directory"
	groupservice "github.com/soulconnect/backend/internal/service/group"
	"github.com/soulconnect/backend/internal/service/hub"
	"github.com/soulconnect/backend/internal/service/responder"
	"github.com/soulconnect/backend/internal/service/session"
	"github.com/soulconnect/backend/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using system environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	classifier := emotion.NewClassifier()
	classifier.Train()
	logger.Info("emotion classifier trained")

	var sink storage.Sink = storage.Noop{}
	if cfg.Database.Enabled() {
		mirror, err := storage.NewMySQL(cfg.Database.DSN, logger)
		if err != nil {
			logger.Warn("database mirror unavailable, running memory-only", zap.Error(err))
		} else {
			sink = mirror
			logger.Info("database mirror connected")
		}
	} else {
		logger.Info("no DATABASE_DSN configured, running memory-only")
	}

	var oracle responder.Oracle
	aiConnected := false
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI, logger)
		if err != nil {
			logger.Warn("generative service unavailable, continuing without it", zap.Error(err))
		} else {
			oracle = aiService
			aiConnected = true
			logger.Info("generative service initialized")
		}
	} else {
		logger.Info("generative model credentials not configured, skipping")
	}

	sessions := session.NewService()
	groups := groupservice.NewService(classifier, sink, logger)
	broadcastHub := hub.New(logger)

	router := handler.NewRouter(handler.Deps{
		Sessions:    sessions,
		Groups:      groups,
		Hub:         broadcastHub,
		Classifier:  classifier,
		Responder:   responder.New(oracle, sink, logger),
		Directory:   directory.NewService(),
		Sink:        sink,
		AIConnected: aiConnected,
		Logger:      logger,
	})

	startServer(ctx, cfg.Server, router, logger)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("Soul Connect backend listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

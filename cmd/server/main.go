// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/quizparty/server/internal/auth"
	"github.com/quizparty/server/internal/cache"
	"github.com/quizparty/server/internal/config"
	"github.com/quizparty/server/internal/database"
	"github.com/quizparty/server/internal/handlers"
	"github.com/quizparty/server/internal/middleware"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		// A missing secret must halt startup rather than serve degraded requests.
		logger.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	if err := database.ConnectDB(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer database.DB.Close()

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Fatalf("failed to init token service: %v", err)
	}

	var board *cache.Leaderboard
	if cfg.RedisAddr != "" {
		board, err = cache.ConnectLeaderboard(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logger.Warnf("leaderboard mirror disabled: %v", err)
			board = nil
		}
	}

	srv := handlers.NewServer(tokens, auth.NewArgon2Hasher(), logger, board)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      middleware.LogMiddleware(logger)(srv.Routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Infof("listening on %s", cfg.ListenAddr)

	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	select {
	case err := <-errc:
		logger.Errorf("failed to serve: %v", err)
	case sig := <-sigs:
		logger.Infof("terminating: %v", sig)
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("shutdown error: %v", err)
		}
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookproject/internal/auth"
	"bookproject/internal/book"
	"bookproject/internal/config"
	"bookproject/internal/httpx"
	"bookproject/internal/platform/logging"
	"bookproject/internal/platform/openlibrary"
	"bookproject/internal/shelf"
	"bookproject/internal/user"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("cannot open database", "db", config.RedactDSN(cfg.DatabaseDSN), "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	shelfService := shelf.NewService(shelf.NewPostgresRepo(dbPool, cfg.DBTimeout))
	userService := user.NewService(user.NewPostgresRepo(dbPool, cfg.DBTimeout))
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, userService)
	olClient := openlibrary.NewClient(openlibrary.DefaultBaseURL, cfg.OpenLibraryUA, cfg.OpenLibraryRPS, cfg.OpenLibraryRetries)
	bookService := book.NewService(book.NewPostgresRepo(dbPool, cfg.DBTimeout), shelfService, olClient)

	router := newRouter(routes{
		users:   user.NewHTTPHandler(userService),
		auth:    auth.NewHTTPHandler(authService),
		shelves: shelf.NewHTTPHandler(shelfService),
		books:   book.NewHTTPHandler(bookService, shelf.WriteError),
		ready:   dbPool.Ping,
	}, cfg.JWTSecret)

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler := httpx.Chain(router,
		httpx.RecoveryMiddleware,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.SecurityHeadersMiddleware(false),
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	slog.Info("database connection OK")
	return pool, nil
}

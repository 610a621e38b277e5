package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ytsandesh670-cpu/Shopping/internal/shop/catalog"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/httpserver"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/observability"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/session"
	"github.com/ytsandesh670-cpu/Shopping/internal/shop/templates/helpers"
)

func main() {
	logger, err := observability.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("shop server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	store, err := loadStore(logger)
	if err != nil {
		return err
	}

	disclosure, err := helpers.Markdown(os.Getenv("SHOP_DISCLOSURE"))
	if err != nil {
		return fmt.Errorf("render disclosure: %w", err)
	}

	cfg := httpserver.Config{
		Address:           getEnv("SHOP_HTTP_ADDR", listenAddr()),
		BasePath:          getEnv("SHOP_BASE_PATH", "/catalog"),
		Environment:       getEnv("SHOP_ENVIRONMENT", "Development"),
		Store:             store,
		PageSize:          getEnvInt(logger, "SHOP_PAGE_SIZE", catalog.DefaultPageSize),
		Locale:            getEnv("SHOP_LOCALE", helpers.DefaultLocale),
		Disclosure:        disclosure,
		SessionHashKey:    sessionKey(logger, "SHOP_SESSION_HASH_KEY", 32),
		SessionBlockKey:   sessionKey(logger, "SHOP_SESSION_BLOCK_KEY", 32),
		CookieSecure:      getEnvBool("SHOP_COOKIE_SECURE"),
		SessionCookieName: os.Getenv("SHOP_SESSION_COOKIE"),
		Logger:            logger,
		Metrics:           observability.NewMetrics(nil, logger),
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("shop server listening",
		zap.String("addr", cfg.Address),
		zap.String("base_path", cfg.BasePath),
		zap.Int("products", store.Len()),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("shop server stopped")
	return nil
}

func loadStore(logger *zap.Logger) (*catalog.Store, error) {
	path := strings.TrimSpace(os.Getenv("SHOP_CATALOG_FILE"))
	if path == "" {
		logger.Info("SHOP_CATALOG_FILE not set; serving built-in sample catalog")
		return catalog.NewStaticStore(), nil
	}
	store, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", zap.String("path", path), zap.Int("products", store.Len()))
	return store, nil
}

func listenAddr() string {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return ":" + port
	}
	return ":8080"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(logger *zap.Logger, key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		logger.Warn("ignoring invalid integer setting", zap.String("key", key), zap.String("value", raw))
		return fallback
	}
	return v
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

// sessionKey reads a base64 key from the environment. Without one, a random key
// is generated and sessions do not survive a restart.
func sessionKey(logger *zap.Logger, key string, length int) []byte {
	return decodeSessionKey(logger, key, os.Getenv(key), length)
}

// decodeSessionKey falls back to the raw bytes when the value is not base64.
func decodeSessionKey(logger *zap.Logger, key, raw string, length int) []byte {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		logger.Warn("session key not configured; generating an ephemeral key", zap.String("key", key))
		return session.GenerateKey(length)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		logger.Warn("session key is not valid base64; using raw bytes", zap.String("key", key), zap.Int("bytes", len(raw)))
		return []byte(raw)
	}
	return decoded
}

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

	"github.com/cmlabs-hris/staffsync-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/gemini"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/repository/kvstore"
	serviceAuth "github.com/cmlabs-hris/staffsync-backend-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/staffsync-backend-go/internal/service/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/service/exporter"
	importService "github.com/cmlabs-hris/staffsync-backend-go/internal/service/importer"
	settingsService "github.com/cmlabs-hris/staffsync-backend-go/internal/service/settings"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	kv, err := database.Open(cfg.Storage.Driver, cfg.Storage.SQLitePath, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}
	defer kv.Close()

	settingsRepo := kvstore.NewSettingsRepository(kv)
	employeeRepo := kvstore.NewEmployeeRepository(kv)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	credentials, err := serviceAuth.NewCredentials(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, cfg.Auth.UnitPassword, bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := serviceAuth.NewAuthService(JWTService, credentials)
	exportSvc := exporter.NewExportService(settingsSvc, employeeSvc)
	importSvc := importService.NewImportService(settingsSvc, employeeSvc, gemini.NewParser(cfg.Gemini.APIKey, cfg.Gemini.Model))

	if cfg.Gemini.APIKey == "" {
		slog.Warn("GEMINI_API_KEY is not set, text import is disabled")
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Env:         cfg.App.Env,
			CORSOrigins: cfg.App.CORSOrigins,
			LogLevel:    cfg.SlogLevel(),
		},
		JWTService,
		settingsSvc,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewSettingsHandler(settingsSvc),
		appHTTP.NewEmployeeHandler(employeeSvc, settingsSvc, exportSvc),
		appHTTP.NewImportHandler(importSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "storage", cfg.Storage.Driver, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

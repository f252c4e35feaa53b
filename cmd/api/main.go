package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/serenus-health/wellness-admin-go/internal/config"
	"github.com/serenus-health/wellness-admin-go/internal/domain/auth"
	appHTTP "github.com/serenus-health/wellness-admin-go/internal/handler/http"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/backend"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/jwt"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/kvstore"
	"github.com/serenus-health/wellness-admin-go/internal/repository/kv"
	"github.com/serenus-health/wellness-admin-go/internal/repository/memory"
	serviceAuth "github.com/serenus-health/wellness-admin-go/internal/service/auth"
	serviceCompany "github.com/serenus-health/wellness-admin-go/internal/service/company"
	servicePlan "github.com/serenus-health/wellness-admin-go/internal/service/plan"
	serviceUser "github.com/serenus-health/wellness-admin-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	}))
	slog.SetDefault(logger)

	storeCfg := kvstore.DefaultConfig(cfg.Store.Path)
	storeCfg.InMemory = cfg.Store.InMemory
	storeCfg.Logger = logger
	db, err := kvstore.Open(storeCfg)
	if err != nil {
		logger.Error("Error opening key-value store", "error", err)
		return
	}
	defer db.Close()

	backendClient, err := backend.NewClient(backend.Config{
		URL: cfg.Backend.URL,
		Key: cfg.Backend.Key,
	})
	if err != nil {
		logger.Error("Error configuring backend client", "error", err)
		return
	}
	if err := backendClient.Ping(context.Background()); err != nil {
		// The portal serves from the local store; a dead backend is worth a
		// warning, not a refusal to start.
		logger.Warn("Backend not reachable", "error", err)
	}

	adapter := kv.NewAdapter(db, logger)
	store := memory.NewStore(adapter, logger)
	userRepo := memory.NewUserRepository(store)
	companyRepo := memory.NewCompanyRepository(store)
	planRepo := memory.NewPlanRepository(store)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authService := serviceAuth.NewAuthService(userRepo, companyRepo, auth.NewFixedVerifier(), adapter, jwtService, logger)
	companyService := serviceCompany.NewCompanyService(companyRepo, userRepo, logger)
	planService := servicePlan.NewPlanService(planRepo, logger)
	userService := serviceUser.NewUserService(userRepo, companyRepo, logger)

	authHandler := appHTTP.NewAuthHandler(jwtService, authService)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	planHandler := appHTTP.NewPlanHandler(planService)
	userHandler := appHTTP.NewUserHandler(userService)

	router := appHTTP.NewRouter(jwtService, authHandler, companyHandler, planHandler, userHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Server running", "addr", "http://localhost"+port, "env", cfg.App.Env)
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("Server error", "error", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

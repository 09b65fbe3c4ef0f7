package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	"github.com/rajshah0904/Liquicity-sub002/internal/handlers"
	"github.com/rajshah0904/Liquicity-sub002/internal/middleware"
)

// NewRouter builds the echo instance with the global middleware chain and all routes.
// Background middleware work stops when ctx is done.
func NewRouter(ctx context.Context, cfg *config.Config, deps *Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiter(ctx, cfg.Security))

	e.GET("/health", deps.HealthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(deps.TokenService, deps.AccountRepo))
	api.GET("/transactions", deps.TransactionHandler.ListTransactions)
	api.POST("/kyc/submissions", deps.KYCHandler.SubmitKYC)
	api.GET("/kyc/status", deps.KYCHandler.GetKYCStatus)

	if deps.DevHandler != nil {
		api.POST("/dev/transactions/generate", deps.DevHandler.GenerateTransactions)
	}

	return e
}

package routes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/dashapi/internal/auth"
	"github.com/yourorg/dashapi/internal/config"
	"github.com/yourorg/dashapi/internal/handlers"
	"github.com/yourorg/dashapi/internal/middleware"
	"github.com/yourorg/dashapi/internal/store"
)

// Register wires every endpoint of the API onto the app.
func Register(app *fiber.App, cfg *config.Config, db *sql.DB) {
	users := store.NewUserStore(db)
	dashboards := store.NewDashboardStore(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := handlers.NewAuthHandler(users, tokens, cfg.DBTimeout)
	dashboardHandler := handlers.NewDashboardHandler(dashboards, cfg.DBTimeout)
	healthHandler := handlers.NewHealthHandler(db, cfg.Version)

	api := app.Group("/api")
	api.Use(middleware.GlobalRateLimiter())

	// Health check
	api.Get("/health", healthHandler.Check)

	// Autenticación (con rate limiting estricto contra fuerza bruta)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Dashboards: requiere bearer token; el usuario se recarga desde la DB
	// en cada request antes de autorizar
	api.Get("/dashboards",
		middleware.RequireAuth(tokens, users, cfg.DBTimeout),
		dashboardHandler.List,
	)
}

package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/luct-reporting/api/config"
	"github.com/luct-reporting/api/database"
	"github.com/luct-reporting/api/handlers"
	auth_handlers "github.com/luct-reporting/api/handlers/auth"
	dashboard_handlers "github.com/luct-reporting/api/handlers/dashboard"
	rating_handlers "github.com/luct-reporting/api/handlers/rating"
	report_handlers "github.com/luct-reporting/api/handlers/report"
	"github.com/luct-reporting/api/utils/auth"
	"github.com/luct-reporting/api/utils/cache"
	"github.com/luct-reporting/api/utils/middleware"
)

// SetupRoutes wires every endpoint under /api
func SetupRoutes(app *fiber.App, store database.Storage, getEnv *config.EnvironmentVariable) {
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: getEnv.JWT_EXPIRY,
		Issuer: getEnv.JWT_ISSUER,
	})

	db := store.GetDB()

	// Redis backs login lockouts and the dashboard stats cache. The API
	// stays up without it.
	redisCache, err := cache.NewRedisCache(getEnv.REDIS_URL)
	if err != nil {
		log.Printf("Warning: failed to connect to Redis: %v. Login lockouts and stats caching are disabled.", err)
		redisCache = nil
	}

	var bruteForce *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForce = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForce)
	reportHandler := report_handlers.NewReportHandler(db)
	ratingHandler := rating_handlers.NewRatingHandler(db)
	dashboardHandler := dashboard_handlers.NewDashboardHandler(db, redisCache)

	api := app.Group("/api")

	// Public
	api.Get("/health", handlers.HandleCheckHealth(store))
	api.Post("/register", authHandler.Register)
	if bruteForce != nil {
		api.Post("/login", bruteForce.CheckLocked(), authHandler.Login)
	} else {
		api.Post("/login", authHandler.Login)
	}

	// Authenticated
	authed := api.Group("", authMiddleware.Required())

	authed.Get("/profile", authHandler.Profile)

	// Static report routes are registered before /reports/:id so the
	// parameter route cannot shadow them.
	authed.Get("/reports/stats", reportHandler.Stats)
	authed.Get("/reports/export", reportHandler.Export)
	authed.Get("/reports", reportHandler.ListReports)
	authed.Post("/reports", reportHandler.CreateReport)
	authed.Get("/reports/:id", reportHandler.GetReport)
	authed.Post("/reports/:id/feedback", reportHandler.AddFeedback)
	authed.Get("/reports/:id/feedback", reportHandler.ListFeedback)

	authed.Get("/ratings/stats", ratingHandler.Stats)
	authed.Get("/ratings", ratingHandler.ListRatings)
	authed.Post("/ratings", ratingHandler.SubmitRating)

	authed.Get("/dashboard/stats", dashboardHandler.Stats)
	authed.Get("/dashboard/data", dashboardHandler.Data)
}

package app

import (
	"fmt"
	"log"
	"time"

	"github.com/luct-reporting/api/api"
	"github.com/luct-reporting/api/config"
	"github.com/luct-reporting/api/database"
	"github.com/luct-reporting/api/router"
	"github.com/luct-reporting/api/services/cron"
	"github.com/luct-reporting/api/utils/middleware"
)

func SetupAndRunServer() error {
	if err := config.LoadENV(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Println("Check whether Postgres is running and reachable")
		return err
	}

	if err := store.Init(); err != nil {
		log.Println("Failed to run database migrations")
		return err
	}

	if getEnv.SEED_SAMPLE_DATA {
		if err := database.NewSeeder(store.GetDB()).SeedAll(); err != nil {
			log.Println("Warning: database seeding failed:", err)
		}
	}

	cronManager := cron.NewCronManager(store.GetDB())
	if err := cronManager.Start(); err != nil {
		log.Println("Warning: failed to start cron jobs:", err)
		cronManager = nil
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    getEnv.ALLOWED_ORIGINS,
		RateLimitRequests: 300,
		RateLimitWindow:   time.Minute,
	})

	router.SetupRoutes(app, store, getEnv)

	return server.Run()
}

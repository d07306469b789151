package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env unless GO_ENV says we are deployed
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		if err := godotenv.Load(); err != nil {
			return err
		}
	}

	return nil
}

// EnvironmentVariable holds all runtime configuration
type EnvironmentVariable struct {
	GO_ENV       string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	PORT         int
	// JWT configuration
	JWT_SECRET string
	JWT_ISSUER string
	JWT_EXPIRY time.Duration
	// Redis configuration
	REDIS_URL string
	// CORS
	ALLOWED_ORIGINS string
	// Seeding
	SEED_SAMPLE_DATA bool
}

// Get reads the environment into an EnvironmentVariable with defaults
func Get() (*EnvironmentVariable, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 5000
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "luct_reporting"
	}

	sslMode := os.Getenv("DB_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "luct-reporting-api"
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}

	return &EnvironmentVariable{
		GO_ENV:           os.Getenv("GO_ENV"),
		DB_USER_NAME:     os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:      os.Getenv("DB_PASSWORD"),
		DB_NAME:          dbName,
		DB_HOST:          dbHost,
		DB_PORT:          dbPort,
		DB_SSL_MODE:      sslMode,
		PORT:             port,
		JWT_SECRET:       os.Getenv("JWT_SECRET"),
		JWT_ISSUER:       jwtIssuer,
		JWT_EXPIRY:       24 * time.Hour,
		REDIS_URL:        redisURL,
		ALLOWED_ORIGINS:  origins,
		SEED_SAMPLE_DATA: os.Getenv("SEED_SAMPLE_DATA") != "false",
	}, nil
}

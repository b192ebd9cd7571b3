package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	FrontendURL string

	MongoDBURI      string
	MongoDBDatabase string

	// Upstream HR backend (work logs, tickets, employee roster)
	HRAPIBaseURL string
	HRAPIToken   string
	HRAPITimeout time.Duration

	// Cached fetch snapshots
	SnapshotTTL     time.Duration
	RosterTTL       time.Duration
	JanitorInterval time.Duration
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	apiTimeout, _ := time.ParseDuration(getEnv("HR_API_TIMEOUT", "20s"))
	snapshotTTL, _ := time.ParseDuration(getEnv("SNAPSHOT_TTL", "5m"))
	rosterTTL, _ := time.ParseDuration(getEnv("ROSTER_TTL", "15m"))
	janitorEvery, _ := time.ParseDuration(getEnv("JANITOR_INTERVAL", "1m"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		MongoDBURI:      getEnv("MONGODB_URI", ""),
		MongoDBDatabase: getEnv("MONGODB_DATABASE", "teampulse"),

		HRAPIBaseURL: getEnv("HR_API_BASE_URL", "http://localhost:4000"),
		HRAPIToken:   getEnv("HR_API_TOKEN", ""),
		HRAPITimeout: apiTimeout,

		SnapshotTTL:     snapshotTTL,
		RosterTTL:       rosterTTL,
		JanitorInterval: janitorEvery,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

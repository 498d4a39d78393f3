package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all process-wide settings, read once at startup.
type Config struct {
	ServerAddr string
	StaticDir  string

	// AuthEnabled controls whether task routes require a bearer token.
	// Disabling it reproduces the open deployment variant.
	AuthEnabled bool

	DBDriver   string // "postgres" or "sqlite"
	SQLitePath string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxIdleMinutes     int
	DBConnMaxLifetimeMinutes int
}

// Load reads configuration from the environment, loading a .env file
// first when one is present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using process environment")
	}

	return Config{
		ServerAddr:  getEnvOrDefault("SERVER_ADDR", ":8080"),
		StaticDir:   getEnvOrDefault("STATIC_DIR", "./static"),
		AuthEnabled: getBoolEnvOrDefault("AUTH_ENABLED", true),

		DBDriver:   getEnvOrDefault("DB_DRIVER", "postgres"),
		SQLitePath: getEnvOrDefault("SQLITE_PATH", "tarefas.db"),

		DBHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),
		DBUser:     getEnvOrDefault("DB_USER", "postgres"),
		DBPassword: getEnvOrDefault("DB_PASSWORD", "password"),
		DBName:     getEnvOrDefault("DB_NAME", "tarefas"),
		DBSSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),

		DBMaxOpenConns:           getIntEnvOrDefault("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:           getIntEnvOrDefault("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxIdleMinutes:     getIntEnvOrDefault("DB_CONN_MAX_IDLE_MINUTES", 5),
		DBConnMaxLifetimeMinutes: getIntEnvOrDefault("DB_CONN_MAX_LIFETIME_MINUTES", 30),
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value
func getEnvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("Invalid %s=%q, using default %d", key, raw, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %t", key, raw, defaultValue)
		return defaultValue
	}

	return value
}

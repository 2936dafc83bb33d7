package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the server.
type Config struct {
	Addr string

	DBDriver   string // "postgres" or "sqlite"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string
	SQLitePath string

	JWTSecret string
	TokenTTL  time.Duration

	LogFile  string
	LogLevel string

	RedisURL    string
	AMQPURL     string
	GeocoderURL string

	TrackingPeriod time.Duration
	TrackingSpeed  float64 // km/h
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		Addr: getEnv("HTTP_ADDR", "0.0.0.0:8080"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "luxride"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimezone: getEnv("DB_TIMEZONE", "UTC"),
		SQLitePath: getEnv("SQLITE_PATH", "luxride.db"),

		JWTSecret: getEnv("JWT_SECRET", "supersecret"),
		TokenTTL:  getDuration("TOKEN_TTL", 72*time.Hour),

		LogFile:  getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		RedisURL:    getEnv("REDIS_URL", ""),
		AMQPURL:     getEnv("AMQP_URL", ""),
		GeocoderURL: getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),

		TrackingPeriod: getDuration("TRACKING_PERIOD", 3*time.Second),
		TrackingSpeed:  getFloat("TRACKING_SPEED_KMH", 40),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid duration for %s=%q, using %s", key, v, defaultValue)
		return defaultValue
	}
	return d
}

func getFloat(key string, defaultValue float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid number for %s=%q, using %v", key, v, defaultValue)
		return defaultValue
	}
	return f
}

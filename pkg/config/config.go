package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	ServiceName  string
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// OwnerEmail is granted the admin role at registration.
	OwnerEmail  string
	CORSOrigins []string

	// Upstream rate source
	RatesAPIURL       string
	RatesAPIKey       string
	RatesFetchTimeout time.Duration

	// Optional Redis rate cache; disabled when RedisAddr is empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RatesCacheTTL time.Duration
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("SERVICE_NAME", "ais-currency-service")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "ais-currency-service")
	viper.SetDefault("OWNER_EMAIL", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATES_API_URL", "https://api.exchangerate.host")
	viper.SetDefault("RATES_API_KEY", "")
	viper.SetDefault("RATES_FETCH_TIMEOUT", "5s")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATES_CACHE_TTL", "5m")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.ServiceName = viper.GetString("SERVICE_NAME")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.OwnerEmail = viper.GetString("OWNER_EMAIL")
	for _, origin := range strings.Split(viper.GetString("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")
	cfg.RatesAPIKey = viper.GetString("RATES_API_KEY")
	cfg.RatesFetchTimeout = parseDurationOr("RATES_FETCH_TIMEOUT", 5*time.Second)

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.RatesCacheTTL = parseDurationOr("RATES_CACHE_TTL", 5*time.Minute)

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

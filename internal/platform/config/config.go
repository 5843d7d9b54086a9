package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	DatabaseURL      string
	DBMaxConns       int32
	DBLockTimeout    time.Duration
	TxMaxRetries     int
	TxRetryBaseDelay time.Duration

	// RedisURL is optional; without it balances are always read from Postgres.
	RedisURL        string
	BalanceCacheTTL time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	BootstrapAdminUsername string
	BootstrapAdminPassword string

	LoginRateLimit     string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DB_MAX_CONNS", 20)
	viper.SetDefault("DB_LOCK_TIMEOUT", "5s")
	viper.SetDefault("TX_MAX_RETRIES", 3)
	viper.SetDefault("TX_RETRY_BASE_DELAY", "20ms")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("BALANCE_CACHE_TTL", "30s")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "pix-wallet")
	viper.SetDefault("BOOTSTRAP_ADMIN_USERNAME", "")
	viper.SetDefault("BOOTSTRAP_ADMIN_PASSWORD", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                   viper.GetString("PORT"),
		IsProduction:           viper.GetBool("IS_PRODUCTION"),
		DatabaseURL:            viper.GetString("PGSQL_URL"),
		DBMaxConns:             viper.GetInt32("DB_MAX_CONNS"),
		TxMaxRetries:           viper.GetInt("TX_MAX_RETRIES"),
		RedisURL:               viper.GetString("REDIS_URL"),
		JWTSecret:              viper.GetString("JWT_SECRET"),
		JWTIssuer:              viper.GetString("JWT_ISSUER"),
		BootstrapAdminUsername: viper.GetString("BOOTSTRAP_ADMIN_USERNAME"),
		BootstrapAdminPassword: viper.GetString("BOOTSTRAP_ADMIN_PASSWORD"),
		LoginRateLimit:         viper.GetString("LOGIN_RATE_LIMIT"),
		CORSAllowedOrigins:     splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.DBMaxConns <= 0 {
		cfg.DBMaxConns = 20
	}
	if cfg.TxMaxRetries < 0 {
		cfg.TxMaxRetries = 0
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Balance cache disabled.")
	}

	cfg.DBLockTimeout = durationOr("DB_LOCK_TIMEOUT", 5*time.Second)
	cfg.TxRetryBaseDelay = durationOr("TX_RETRY_BASE_DELAY", 20*time.Millisecond)
	cfg.BalanceCacheTTL = durationOr("BALANCE_CACHE_TTL", 30*time.Second)
	cfg.JWTExpiryDuration = durationOr("JWT_EXPIRY_DURATION", time.Hour)

	return cfg, nil
}

// durationOr parses key as a Go duration ("250ms", "1h"), falling back on bad input.
func durationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	CacheDBPath   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	RemoteTimeout time.Duration
	ReloadOffset  time.Duration

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RateLimit string

	TelegramBotToken string
	TelegramChatID   int64

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("CACHE_DB_PATH", "crewdesk_cache.db")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REMOTE_TIMEOUT", "10s")
	viper.SetDefault("RELOAD_OFFSET", "2m")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "crewdesk")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", int64(0))
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.CacheDBPath = viper.GetString("CACHE_DB_PATH")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	remoteTimeoutStr := viper.GetString("REMOTE_TIMEOUT")
	remoteTimeout, err := time.ParseDuration(remoteTimeoutStr)
	if err != nil || remoteTimeout <= 0 {
		remoteTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for REMOTE_TIMEOUT ('%s'). Defaulting to %s.\n", remoteTimeoutStr, remoteTimeout)
	}
	cfg.RemoteTimeout = remoteTimeout

	reloadOffsetStr := viper.GetString("RELOAD_OFFSET")
	reloadOffset, err := time.ParseDuration(reloadOffsetStr)
	if err != nil || reloadOffset < 0 {
		reloadOffset = 2 * time.Minute
		log.Printf("Warning: Invalid value for RELOAD_OFFSET ('%s'). Defaulting to %s.\n", reloadOffsetStr, reloadOffset)
	}
	cfg.ReloadOffset = reloadOffset

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.TelegramBotToken = viper.GetString("TELEGRAM_BOT_TOKEN")
	cfg.TelegramChatID = viper.GetInt64("TELEGRAM_CHAT_ID")
	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set. Office notifications are disabled.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

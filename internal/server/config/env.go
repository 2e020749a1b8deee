package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Only variables
// that are actually set override the current value, so defaults and earlier
// layers survive an empty environment.
func parseEnv(config *Config) {
	setString(&config.Address, "ADDRESS")
	setString(&config.DatabaseDSN, "DATABASE_DSN")
	setString(&config.SecretKey, "SECRET_KEY")
	setString(&config.NewsAPIURL, "NEWS_API_URL")
	setString(&config.NewsAPIKey, "NEWS_API_KEY")
	setString(&config.SentimentProvider, "SENTIMENT_PROVIDER")
	setString(&config.HuggingFaceAPIURL, "HUGGINGFACE_API_URL")
	setString(&config.HuggingFaceAPIKey, "HUGGINGFACE_API_KEY")
	setString(&config.CohereAPIKey, "COHERE_API_KEY")
	setString(&config.SMTPHost, "SMTP_HOST")
	setString(&config.SMTPPort, "SMTP_PORT")
	setString(&config.SMTPUser, "SMTP_USER")
	setString(&config.SMTPPassword, "SMTP_PASSWORD")
	setString(&config.SMTPFrom, "SMTP_FROM")
	setString(&config.RedisAddr, "REDIS_ADDR")

	if v, ok := os.LookupEnv("TOKEN_VALIDITY_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("NEWS_CACHE_TTL_SECONDS"); ok {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			config.NewsCacheTTL = time.Duration(secs) * time.Second
		}
	}
	if v, ok := os.LookupEnv("REQUIRE_EMAIL_VERIFICATION"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.RequireEmailVerification = b
		}
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

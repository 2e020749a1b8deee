// Package config handles configuration for the server component,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the newssense server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenValidityDuration: session token lifetime.
//   - RequireEmailVerification: when true, unverified accounts cannot log in
//     and signup does not auto-issue a token.
//   - NewsAPIURL / NewsAPIKey: news-search provider settings.
//   - SentimentProvider: "huggingface" or "cohere".
//   - HuggingFaceAPIURL / HuggingFaceAPIKey / CohereAPIKey: sentiment provider settings.
//   - SMTPHost / SMTPPort / SMTPUser / SMTPPassword / SMTPFrom: outbound email.
//   - RedisAddr: optional Redis address for the news response cache; empty disables it.
//   - NewsCacheTTL: lifetime of cached news responses.
type Config struct {
	Address                  string
	DatabaseDSN              string
	SecretKey                string
	TokenValidityDuration    time.Duration
	RequireEmailVerification bool
	NewsAPIURL               string
	NewsAPIKey               string
	SentimentProvider        string
	HuggingFaceAPIURL        string
	HuggingFaceAPIKey        string
	CohereAPIKey             string
	SMTPHost                 string
	SMTPPort                 string
	SMTPUser                 string
	SMTPPassword             string
	SMTPFrom                 string
	RedisAddr                string
	NewsCacheTTL             time.Duration
}

// LoadDefaults populates Config with development defaults. Secrets have no
// defaults on purpose; Validate rejects a config without them.
func (c *Config) LoadDefaults() {
	c.Address = ":9090"
	c.TokenValidityDuration = time.Hour
	c.RequireEmailVerification = true
	c.NewsAPIURL = "https://newsapi.org/v2/everything"
	c.SentimentProvider = ProviderHuggingFace
	c.HuggingFaceAPIURL = "https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment"
	c.SMTPPort = "587"
	c.NewsCacheTTL = 5 * time.Minute
}

// Known sentiment provider names.
const (
	ProviderHuggingFace = "huggingface"
	ProviderCohere      = "cohere"
)

// Validate checks that the settings the server cannot run without are present.
// A missing secret is a startup error, never a runtime fallback.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("config: DATABASE_DSN is required")
	}
	if c.SecretKey == "" {
		return errors.New("config: SECRET_KEY is required")
	}
	if c.SentimentProvider != ProviderHuggingFace && c.SentimentProvider != ProviderCohere {
		return errors.New("config: SENTIMENT_PROVIDER must be huggingface or cohere")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Port   string
	AppEnv string

	MongoURI            string
	MongoDatabase       string
	MongoTransactions   bool
	MongoConnectRetries int
	MongoConnectBackoff time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	PixKey          string
	PayOnHubBaseURL string
	PayOnHubPublic  string
	PayOnHubSecret  string
	PayOnHubTimeout time.Duration
	PublicBaseURL   string

	AllowedOrigins []string

	OrderExpiry         time.Duration
	OrderExpiryInterval time.Duration

	OtelEnabled  bool
	OtelEndpoint string
	ServiceName  string
}

// IsProduction reports whether cookies must be marked Secure and logs emitted as JSON.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MONGODB_DATABASE", "flor-de-lima")
	v.SetDefault("MONGODB_TRANSACTIONS", false)
	v.SetDefault("MONGODB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("MONGODB_CONNECT_BACKOFF", 5*time.Second)
	v.SetDefault("TOKEN_TTL", 24*time.Hour)
	v.SetDefault("PAYONHUB_BASE_URL", "https://api.payonhub.com/v1")
	v.SetDefault("PAYONHUB_TIMEOUT", 30*time.Second)
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ORDER_EXPIRY", time.Duration(0))
	v.SetDefault("ORDER_EXPIRY_INTERVAL", 10*time.Minute)
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")
	v.SetDefault("SERVICE_NAME", "flordelima-api")
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; the real environment still applies.
	_ = godotenv.Load()

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:   v.GetString("PORT"),
		AppEnv: v.GetString("APP_ENV"),

		MongoURI:            v.GetString("MONGODB_URI"),
		MongoDatabase:       v.GetString("MONGODB_DATABASE"),
		MongoTransactions:   v.GetBool("MONGODB_TRANSACTIONS"),
		MongoConnectRetries: v.GetInt("MONGODB_CONNECT_ATTEMPTS"),
		MongoConnectBackoff: v.GetDuration("MONGODB_CONNECT_BACKOFF"),

		JWTSecret: v.GetString("JWT_SECRET"),
		TokenTTL:  v.GetDuration("TOKEN_TTL"),

		PixKey:          v.GetString("PIX_KEY"),
		PayOnHubBaseURL: strings.TrimRight(v.GetString("PAYONHUB_BASE_URL"), "/"),
		PayOnHubPublic:  v.GetString("PAYONHUB_PUBLIC_KEY"),
		PayOnHubSecret:  v.GetString("PAYONHUB_SECRET_KEY"),
		PayOnHubTimeout: v.GetDuration("PAYONHUB_TIMEOUT"),
		PublicBaseURL:   strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),

		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),

		OrderExpiry:         v.GetDuration("ORDER_EXPIRY"),
		OrderExpiryInterval: v.GetDuration("ORDER_EXPIRY_INTERVAL"),

		OtelEnabled:  v.GetBool("OTEL_ENABLED"),
		OtelEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  v.GetString("SERVICE_NAME"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI is not set"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	if c.MongoConnectRetries < 1 {
		errs = append(errs, errors.New("MONGODB_CONNECT_ATTEMPTS must be at least 1"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.OrderExpiry > 0 && c.OrderExpiryInterval <= 0 {
		errs = append(errs, errors.New("ORDER_EXPIRY_INTERVAL must be positive when ORDER_EXPIRY is set"))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all process-wide settings, read once at startup. The signing
// secret and captcha secret live only here and in the components they are
// injected into — they must never be logged.
type Config struct {
	Port             string
	Env              string
	DatabaseDSN      string
	JWTSecret        string
	JWTExpiry        time.Duration
	CaptchaSecret    string
	CaptchaVerifyURL string
	CORSOrigin       string
}

// Load reads configuration from the environment. JWT_SECRET and DATABASE_DSN
// have no usable default — their absence is a startup error.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiry:        2 * time.Hour,
		CaptchaSecret:    os.Getenv("RECAPTCHA_SECRET"),
		CaptchaVerifyURL: getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:3000"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DATABASE_DSN must be set")
	}

	return cfg, nil
}

// IsProduction reports whether the process runs in a production-like
// deployment. It drives the Secure flag on session cookies uniformly.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	InferenceURL     string
	InferenceTimeout time.Duration

	FlashSecret string
	FlashTTL    time.Duration

	// 비어 있으면 FlashSecret, 그것도 없으면 프로세스별 랜덤 키
	CSRFKey       string
	SecureCookies bool

	AllowedOrigins     []string
	RateLimitPerMinute int
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) (time.Duration, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return d, nil
}

func getInt(k string, def int) (int, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}

func getBool(k string, def bool) (bool, error) {
	v := getEnv(k, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", k, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// .env 파일은 선택 사항
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "production"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		InferenceURL:   getEnv("INFERENCE_URL", "http://127.0.0.1:5000/predict"),
		FlashSecret:    os.Getenv("FLASH_SECRET_KEY"),
		CSRFKey:        getEnv("CSRF_AUTH_KEY", os.Getenv("FLASH_SECRET_KEY")),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.InferenceTimeout, err = getDuration("INFERENCE_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.FlashTTL, err = getDuration("FLASH_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = getInt("RATE_LIMIT_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if cfg.SecureCookies, err = getBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	return cfg, nil
}

package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	DatasetPath string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	CacheTTL    time.Duration
	SubmitRPS   int
	SubmitBurst int
	Workers     int
}

func Load() Config {
	// .env is optional; real environments set vars directly
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8000"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		DatasetPath: env("DATASET_PATH", "data/reviews.csv"),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		RedisPass:   env("REDIS_PASSWORD", ""),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		SubmitRPS:   atoi("SUBMIT_RPS", 20),
		SubmitBurst: atoi("SUBMIT_BURST", 40),
		Workers:     atoi("ANALYZE_WORKERS", 8),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

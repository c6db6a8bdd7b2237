package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	HostawayBase    string
	HostawayKey     string
	HostawayAccount string

	GoogleBase     string
	GoogleKey      string
	GooglePlaceIDs []string

	Workers  int
	CacheTTL time.Duration
}

func Load() Config {
	// optional .env for local development; real env vars win
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		HostawayBase:    env("HOSTAWAY_BASE_URL", "https://api.hostaway.com/v1"),
		HostawayKey:     env("HOSTAWAY_API_KEY", ""),
		HostawayAccount: env("HOSTAWAY_ACCOUNT_ID", "61148"),
		GoogleBase:      env("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"),
		GoogleKey:       env("GOOGLE_PLACES_API_KEY", ""),
		GooglePlaceIDs:  split(env("GOOGLE_PLACE_IDS", "")),
		Workers:         atoi("WARM_WORKERS", 4),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.HostawayKey == "" {
		log.Warn().Msg("HOSTAWAY_API_KEY is empty; live fetches will fall back to fixture data")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func split(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

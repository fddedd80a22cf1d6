package config

import (
	"time"

	"studytrack/internal/infrastructure"
)

// Config carries every tunable the core consumes. Read-only after Load.
type Config struct {
	SupabaseURL string
	SupabaseKey string

	NatsURL string

	Port string

	ItemsPerPage    int
	DoubtRateLimit  int
	DoubtRateWindow time.Duration
	HTTPRateLimit   int
	UserCacheTTL    time.Duration
	ClassCacheTTL   time.Duration
	RequestTimeout  time.Duration

	TranslationsPath string
}

func Load() *Config {
	return &Config{
		SupabaseURL:      infrastructure.GetEnvAsString("SUPABASE_URL", "http://localhost:8000"),
		SupabaseKey:      infrastructure.GetEnvAsString("SUPABASE_KEY", "public-anon-key"),
		NatsURL:          infrastructure.GetEnvAsString("NATS_URL", ""),
		Port:             infrastructure.GetEnvAsString("PORT", "8080"),
		ItemsPerPage:     infrastructure.GetEnvAsInt("ITEMS_PER_PAGE", 10),
		DoubtRateLimit:   infrastructure.GetEnvAsInt("DOUBT_RATE_LIMIT", 5),
		DoubtRateWindow:  infrastructure.GetEnvAsDuration("DOUBT_RATE_WINDOW", 60*time.Second),
		HTTPRateLimit:    infrastructure.GetEnvAsInt("HTTP_RATE_LIMIT", 20),
		UserCacheTTL:     infrastructure.GetEnvAsDuration("USER_CACHE_TTL", 5*time.Minute),
		ClassCacheTTL:    infrastructure.GetEnvAsDuration("CLASS_CACHE_TTL", 10*time.Minute),
		RequestTimeout:   infrastructure.GetEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second),
		TranslationsPath: infrastructure.GetEnvAsString("TRANSLATIONS_PATH", ""),
	}
}

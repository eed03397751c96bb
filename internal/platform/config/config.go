package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Directory store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Server captures process level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string

	Flyer Flyer
	Fraud Fraud
	Redis RedisConfig

	DatabaseURL string
}

// Flyer configures the frequent flyer validator and its directory.
type Flyer struct {
	LicenseKey       string
	Store            string
	BreakerThreshold int
	BreakerCooldown  time.Duration
	// SeedDemo upserts the demo members into the Postgres directory at startup.
	SeedDemo bool
}

// Fraud configures the fraud lookup.
type Fraud struct {
	RiskThreshold int
}

// RedisConfig configures the optional Redis connection. An empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Server, error) {
	p := parser{lookup: lookup}
	cfg := Server{
		Addr:      p.str("CARDEVAL_ADDR", ":8080"),
		LogLevel:  p.str("LOG_LEVEL", "info"),
		LogFormat: p.str("LOG_FORMAT", "json"),
		Flyer: Flyer{
			LicenseKey:       p.str("FLYER_LICENSE_KEY", "OK"),
			Store:            strings.ToLower(p.str("FLYER_STORE", StoreMemory)),
			BreakerThreshold: p.int("FLYER_BREAKER_THRESHOLD", 5),
			BreakerCooldown:  p.duration("FLYER_BREAKER_COOLDOWN", 30*time.Second),
			SeedDemo:         p.bool("FLYER_SEED_DEMO", false),
		},
		Fraud: Fraud{
			RiskThreshold: p.int("FRAUD_RISK_THRESHOLD", 50),
		},
		Redis: RedisConfig{
			URL:          p.str("REDIS_URL", ""),
			PoolSize:     p.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.int("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  p.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: p.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		DatabaseURL: p.str("DATABASE_URL", ""),
	}
	if p.err != nil {
		return Server{}, p.err
	}

	switch cfg.Flyer.Store {
	case StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Server{}, fmt.Errorf("DATABASE_URL is required when FLYER_STORE=%s", StorePostgres)
		}
	default:
		return Server{}, fmt.Errorf("unknown FLYER_STORE %q", cfg.Flyer.Store)
	}
	if cfg.Fraud.RiskThreshold < 0 || cfg.Fraud.RiskThreshold > 100 {
		return Server{}, fmt.Errorf("FRAUD_RISK_THRESHOLD must be between 0 and 100, got %d", cfg.Fraud.RiskThreshold)
	}
	return cfg, nil
}

// parser keeps the first conversion error.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) str(key, def string) string {
	if v, ok := p.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (p *parser) int(key string, def int) int {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
	}
	return d
}

func (p *parser) bool(key string, def bool) bool {
	v := p.str(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
	}
	return b
}

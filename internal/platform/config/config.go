package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr      string `env:"KONTROLA_ADDR"       envDefault:":8080"`
	LogLevel  string `env:"KONTROLA_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"KONTROLA_LOG_FORMAT" envDefault:"json"`

	Finances Upstream `envPrefix:"FINANCES_"`
	Registry Upstream `envPrefix:"REGISTRY_"`

	Contracts Contracts
	Breaker   Breaker
	Paging    Paging

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Upstream describes one third-party HTTP provider. An empty key disables it.
type Upstream struct {
	BaseURL string        `env:"API_URL"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"25s"`
}

// Contracts bounds the fan-out of the law-type × role cross product.
type Contracts struct {
	Concurrency int `env:"CONTRACTS_CONCURRENCY" envDefault:"3"`
}

// Breaker configures the per-upstream circuit breakers.
type Breaker struct {
	FailureThreshold int           `env:"BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	SuccessThreshold int           `env:"BREAKER_SUCCESS_THRESHOLD" envDefault:"1"`
	Cooldown         time.Duration `env:"BREAKER_COOLDOWN"          envDefault:"30s"`
}

// Paging holds drill-down defaults.
type Paging struct {
	DefaultLimit int `env:"PAGE_LIMIT_DEFAULT" envDefault:"20"`
	MaxLimit     int `env:"PAGE_LIMIT_MAX"     envDefault:"100"`
}

const (
	defaultFinancesURL = "https://api.checko.ru/v2"
	defaultRegistryURL = "https://api.ofdata.ru/v2"
)

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(dotenvPaths ...string) (Server, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, p := range dotenvPaths {
		// A missing .env is the normal production case.
		_ = godotenv.Load(p)
	}
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func (c *Server) applyDefaults() {
	if c.Finances.BaseURL == "" {
		c.Finances.BaseURL = defaultFinancesURL
	}
	if c.Registry.BaseURL == "" {
		c.Registry.BaseURL = defaultRegistryURL
	}
}

// Validate rejects settings the services cannot work with.
func (c Server) Validate() error {
	if c.Contracts.Concurrency < 1 {
		return fmt.Errorf("CONTRACTS_CONCURRENCY must be at least 1, got %d", c.Contracts.Concurrency)
	}
	if c.Paging.DefaultLimit < 1 || c.Paging.MaxLimit < c.Paging.DefaultLimit {
		return fmt.Errorf("invalid paging limits: default %d, max %d", c.Paging.DefaultLimit, c.Paging.MaxLimit)
	}
	if c.Finances.Timeout <= 0 || c.Registry.Timeout <= 0 {
		return fmt.Errorf("upstream timeouts must be positive")
	}
	return nil
}

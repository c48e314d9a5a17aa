package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
// DATABASE_URL, LLM_API_KEY y REDIS_ADDR son opcionales: sin ellos el servicio
// funciona sin persistencia, con el ranking local o sin cache respectivamente.
type Config struct {
	HTTPPort           string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL        string `env:"DATABASE_URL"`
	LLMAPIKey          string `env:"LLM_API_KEY"`
	LLMBaseURL         string `env:"LLM_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai"`
	LLMModel           string `env:"LLM_MODEL" envDefault:"gemini-2.0-flash"`
	LLMTimeoutSeconds  int    `env:"LLM_TIMEOUT_SECONDS" envDefault:"30"`
	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLMinutes    int    `env:"CACHE_TTL_MINUTES" envDefault:"60"`
	CatalogPath        string `env:"CATALOG_PATH"`
	BreakerMaxFailures uint32 `env:"BREAKER_MAX_FAILURES" envDefault:"5"`
	BreakerOpenSeconds int    `env:"BREAKER_OPEN_SECONDS" envDefault:"30"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) LLMEnabled() bool { return c.LLMAPIKey != "" }

func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

func (c *Config) BreakerOpenTimeout() time.Duration {
	return time.Duration(c.BreakerOpenSeconds) * time.Second
}

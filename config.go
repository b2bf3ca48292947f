package lingo

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds catalog settings read from the environment.
// Embed it in an application config or parse it alone with ConfigFromEnv.
type Config struct {
	Dir             string          `env:"LINGO_DIR" envDefault:"locales"`
	DefaultLanguage string          `env:"LINGO_DEFAULT_LANGUAGE" envDefault:"en-US"`
	Concurrency     int             `env:"LINGO_CONCURRENCY" envDefault:"0"`
	MessageFallback MessageFallback `env:"LINGO_MESSAGE_FALLBACK" envDefault:"language"`
}

// ConfigFromEnv parses Config from environment variables.
func ConfigFromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("lingo: parsing config: %w", err)
	}
	return cfg, nil
}

// Options converts cfg into Load options. A zero Concurrency keeps the default.
func (cfg Config) Options() []Option {
	opts := []Option{WithMessageFallback(cfg.MessageFallback)}
	if cfg.Concurrency != 0 {
		opts = append(opts, WithConcurrency(cfg.Concurrency))
	}
	return opts
}

// LoadConfig loads the catalog described by cfg. Extra options are applied
// after the ones derived from cfg.
func LoadConfig(cfg Config, opts ...Option) (*Catalog, error) {
	return Load(cfg.Dir, cfg.DefaultLanguage, append(cfg.Options(), opts...)...)
}

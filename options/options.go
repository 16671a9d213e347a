// Package options provides functional options for configuring Recommender instances.
package options

import (
	"errors"

	"github.com/programrank/programrank/providers/openai"
	"github.com/programrank/programrank/similarity"
	"github.com/programrank/programrank/types"
	"github.com/programrank/programrank/vectorizer"
)

// Option represents a configuration option for a Recommender
type Option func(*Config) error

// Config holds the configuration for building a Recommender
type Config struct {
	// ProviderFactory builds a fresh VectorProvider for every ranking run,
	// so no feature-space state is ever shared between invocations.
	// Nil selects the local TF-IDF provider.
	ProviderFactory func() (types.VectorProvider, error)
	Comparator      similarity.SimilarityFunc
	Stopwords       map[string]struct{}
	TokenCacheSize  int
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		Comparator: similarity.CosineSimilarity,
	}
}

// Apply applies all the given options to the config
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Comparator == nil {
		return errors.New("comparator is required - use WithComparator or keep the default")
	}
	if c.TokenCacheSize < 0 {
		return errors.New("token cache size cannot be negative")
	}
	return nil
}

// WithTFIDFProvider selects the local TF-IDF provider (the default)
func WithTFIDFProvider() Option {
	return func(cfg *Config) error {
		cfg.ProviderFactory = nil
		return nil
	}
}

// WithOpenAIProvider sets up an OpenAI embedding provider
func WithOpenAIProvider(apiKey string, model ...string) Option {
	return func(cfg *Config) error {
		config := openai.OpenAIConfig{
			APIKey: apiKey,
		}
		if len(model) > 0 {
			config.Model = model[0]
		}

		cfg.ProviderFactory = func() (types.VectorProvider, error) {
			return openai.NewOpenAIProvider(config)
		}
		return nil
	}
}

// WithCustomProvider allows using a caller-supplied provider factory
func WithCustomProvider(factory func() (types.VectorProvider, error)) Option {
	return func(cfg *Config) error {
		if factory == nil {
			return errors.New("provider factory cannot be nil")
		}
		cfg.ProviderFactory = factory
		return nil
	}
}

// WithComparator sets a custom similarity function
func WithComparator(comparator similarity.SimilarityFunc) Option {
	return func(cfg *Config) error {
		if comparator == nil {
			return errors.New("comparator cannot be nil")
		}
		cfg.Comparator = comparator
		return nil
	}
}

// WithStopwords replaces the default English stopword set used by the
// TF-IDF provider
func WithStopwords(words []string) Option {
	return func(cfg *Config) error {
		cfg.Stopwords = vectorizer.StopwordSet(words)
		return nil
	}
}

// WithTokenCacheSize bounds the TF-IDF provider's tokenization memo
func WithTokenCacheSize(n int) Option {
	return func(cfg *Config) error {
		if n <= 0 {
			return errors.New("token cache size must be positive")
		}
		cfg.TokenCacheSize = n
		return nil
	}
}

package codec

import (
	"github.com/fengb3/Hachi64/pkg/alphabet"
	"github.com/fengb3/Hachi64/pkg/observability"
	"go.uber.org/zap"
)

// Config is a configuration type for codecs.
type Config struct {
	// Logger receives debug events for rejected input.
	//
	// If not set, then a no-op logger will be used.
	Logger *zap.Logger

	// Observer receives metric events for every call.
	//
	// If not set, then observability.NoopCodecObserver will be used.
	Observer observability.CodecObserver

	// AlphabetOptions are passed to alphabet.New by New. They are ignored
	// by NewFromAlphabet, which takes an already built alphabet.
	AlphabetOptions []alphabet.Option
}

// Option is a functional option type used to configure a Codec.
type Option func(*Config) error

// WithLogger sets the logger used by the codec.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithObserver sets the metrics observer used by the codec.
func WithObserver(obs observability.CodecObserver) Option {
	return func(c *Config) error {
		c.Observer = obs
		return nil
	}
}

// WithAlphabetOptions appends options used to build the alphabet.
func WithAlphabetOptions(opts ...alphabet.Option) Option {
	return func(c *Config) error {
		c.AlphabetOptions = append(c.AlphabetOptions, opts...)
		return nil
	}
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Observer == nil {
		cfg.Observer = observability.NoopCodecObserver
	}
	return cfg, nil
}

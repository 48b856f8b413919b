package alphabet

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Config controls how an alphabet is built and how text is split into
// its symbols.
type Config struct {
	// Segmentation selects the unit a single symbol is made of.
	//
	// If not set, then Runes will be used.
	Segmentation Segmentation

	// Normalize enables Unicode normalization of the symbols, and of any
	// text decoded with the alphabet, to Form.
	Normalize bool

	// Form is the normalization form used when Normalize is set.
	Form norm.Form
}

// Option is a functional option type used to configure an alphabet.
type Option func(*Config) error

// WithGraphemeClusters treats every extended grapheme cluster as one
// symbol, so that symbols such as emoji with modifiers or letters with
// combining marks can be used.
func WithGraphemeClusters() Option {
	return func(c *Config) error {
		c.Segmentation = GraphemeClusters
		return nil
	}
}

// WithSegmentation sets the segmentation explicitly.
func WithSegmentation(s Segmentation) Option {
	return func(c *Config) error {
		switch s {
		case Runes, GraphemeClusters:
			c.Segmentation = s
			return nil
		default:
			return fmt.Errorf("alphabet: unknown segmentation %d", int(s))
		}
	}
}

// WithNormalization normalizes the alphabet's symbols, and all text
// decoded against it, to the given form. This allows decoding input
// that went through a system which changed its normalization.
func WithNormalization(form norm.Form) Option {
	return func(c *Config) error {
		c.Normalize = true
		c.Form = form
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
	return cfg, nil
}

package random

import (
	"fmt"
	"log/slog"
)

// Chain tries its sources in order until one returns the requested bytes.
// It holds no mutable state and is safe for concurrent use.
type Chain struct {
	sources  []Source
	insecure Source
	logger   *slog.Logger

	legacyRange bool
	noSecondary bool
}

// Option configures a Chain.
type Option func(*Chain)

// WithSources replaces the secure sources, tried in the given order.
func WithSources(sources ...Source) Option {
	return func(c *Chain) {
		c.sources = sources
	}
}

// WithInsecure replaces the fallback used when less secure output is allowed.
func WithInsecure(source Source) Option {
	return func(c *Chain) {
		c.insecure = source
	}
}

// WithLogger sets the logger used to report fallthroughs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		c.logger = logger
	}
}

// WithLegacyIndexRange makes the default insecure fallback draw alphabet
// indices from [0, n) instead of the whole alphabet.
func WithLegacyIndexRange(legacy bool) Option {
	return func(c *Chain) {
		c.legacyRange = legacy
	}
}

// WithoutSecondary drops the Tink source from the chain.
func WithoutSecondary() Option {
	return func(c *Chain) {
		c.noSecondary = true
	}
}

// NewChain returns a chain of crypto/rand, Tink and getrandom, with the
// alphabet-based fallback behind them.
func NewChain(opts ...Option) *Chain {
	chain := &Chain{
		sources: []Source{NewPrimary(), NewSecondary(), NewTertiary()},
	}

	for _, opt := range opts {
		opt(chain)
	}

	if chain.noSecondary {
		kept := make([]Source, 0, len(chain.sources))

		for _, src := range chain.sources {
			if _, ok := src.(*Secondary); !ok {
				kept = append(kept, src)
			}
		}

		chain.sources = kept
	}

	if chain.insecure == nil {
		chain.insecure = NewInsecure(chain.legacyRange)
	}

	return chain
}

// Sources returns the names of the secure sources in order.
func (c *Chain) Sources() []string {
	names := make([]string, 0, len(c.sources))
	for _, src := range c.sources {
		names = append(names, src.Name())
	}

	return names
}

// Generate returns n bytes from the first secure source that succeeds.
// If all fail, the insecure fallback is used when allowLessSecure is set,
// otherwise ErrUnavailable is returned.
func (c *Chain) Generate(n int, allowLessSecure bool) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	logger := c.log()

	for _, src := range c.sources {
		if opt, ok := src.(Optional); ok && !opt.Available() {
			logger.Debug("randomness source not available", "source", src.Name())

			continue
		}

		buf, err := src.Generate(n)
		if err == nil && len(buf) != n {
			err = fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, len(buf), n)
		}

		if err == nil {
			return buf, nil
		}

		logger.Warn("randomness source failed", "source", src.Name(), "err", err)
	}

	if !allowLessSecure {
		return nil, ErrUnavailable
	}

	logger.Warn("falling back to non-cryptographic randomness", "source", c.insecure.Name(), "insecure", true)

	buf, err := c.insecure.Generate(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if len(buf) != n {
		return nil, fmt.Errorf("%w: %w: got %d of %d bytes", ErrUnavailable, ErrShortRead, len(buf), n)
	}

	return buf, nil
}

func (c *Chain) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}

	return slog.Default()
}

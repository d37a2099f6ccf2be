//go:build !linux

package random

import "fmt"

// Tertiary is a placeholder on platforms without getrandom(2).
type Tertiary struct{}

// NewTertiary returns a Tertiary that is never available.
func NewTertiary() *Tertiary {
	return &Tertiary{}
}

// Name returns "getrandom".
func (*Tertiary) Name() string {
	return "getrandom"
}

// Available always reports false.
func (*Tertiary) Available() bool {
	return false
}

// Generate always fails.
func (t *Tertiary) Generate(int) ([]byte, error) {
	return nil, fmt.Errorf("reading %s: %w", t.Name(), ErrSourceUnavailable)
}

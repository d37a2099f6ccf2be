package random

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Primary reads from the platform CSPRNG.
type Primary struct {
	reader io.Reader
}

// NewPrimary returns a Primary backed by crypto/rand.Reader.
func NewPrimary() *Primary {
	return &Primary{reader: rand.Reader}
}

// NewPrimaryFrom returns a Primary reading from r instead of crypto/rand.
func NewPrimaryFrom(r io.Reader) *Primary {
	return &Primary{reader: r}
}

// Name returns "crypto/rand".
func (*Primary) Name() string {
	return "crypto/rand"
}

// Generate reads n bytes from the underlying reader.
func (p *Primary) Generate(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.reader, buf); err != nil {
		return nil, fmt.Errorf("reading %s: %w", p.Name(), err)
	}

	return buf, nil
}

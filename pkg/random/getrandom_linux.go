//go:build linux

package random

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Tertiary calls getrandom(2) without blocking on an uninitialized entropy pool.
type Tertiary struct {
	getrandom func(buf []byte, flags int) (int, error)
	flags     int
}

// NewTertiary returns a Tertiary using GRND_NONBLOCK.
func NewTertiary() *Tertiary {
	return &Tertiary{getrandom: unix.Getrandom, flags: unix.GRND_NONBLOCK}
}

// Name returns "getrandom".
func (*Tertiary) Name() string {
	return "getrandom"
}

// Available reports whether the syscall is wired.
func (t *Tertiary) Available() bool {
	return t != nil && t.getrandom != nil
}

// Generate fills n bytes. EAGAIN means the pool is not ready and is reported
// as ErrInsufficientEntropy, ENOSYS as ErrSourceUnavailable.
func (t *Tertiary) Generate(n int) ([]byte, error) {
	if !t.Available() {
		return nil, fmt.Errorf("reading %s: %w", t.Name(), ErrSourceUnavailable)
	}

	buf := make([]byte, n)

	for read := 0; read < n; {
		m, err := t.getrandom(buf[read:], t.flags)

		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN):
			return nil, fmt.Errorf("reading %s: %w", t.Name(), ErrInsufficientEntropy)
		case errors.Is(err, unix.ENOSYS):
			return nil, fmt.Errorf("reading %s: %w", t.Name(), ErrSourceUnavailable)
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", t.Name(), err)
		case m <= 0:
			return nil, fmt.Errorf("reading %s: %w", t.Name(), ErrShortRead)
		}

		read += m
	}

	return buf, nil
}

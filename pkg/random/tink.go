package random

import (
	"fmt"
	"math"

	tinkrandom "github.com/tink-crypto/tink-go/v2/subtle/random"
)

// Secondary draws bytes through Tink's subtle/random package.
// The zero value has no reader and reports itself unavailable.
type Secondary struct {
	read func(n uint32) []byte
}

// NewSecondary returns a Secondary backed by tinkrandom.GetRandomBytes.
func NewSecondary() *Secondary {
	return &Secondary{read: tinkrandom.GetRandomBytes}
}

// Name returns "tink".
func (*Secondary) Name() string {
	return "tink"
}

// Available reports whether a Tink reader is wired.
func (s *Secondary) Available() bool {
	return s != nil && s.read != nil
}

// Generate returns n bytes from Tink. Tink panics when its reader fails,
// the panic is turned into an error so the chain can move on.
func (s *Secondary) Generate(n int) (out []byte, err error) {
	if !s.Available() {
		return nil, ErrSourceUnavailable
	}

	if n < 0 || uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("reading %s: %v", s.Name(), r)
		}
	}()

	return s.read(uint32(n)), nil
}

package random

import (
	"math/rand/v2"
	"strings"
)

// punctuation is appended after letters and digits when building the alphabet.
const punctuation = `~!@#$%&*()-=+{};:"<>,.?/'`

//nolint:gochecknoglobals
var alphabet = buildAlphabet()

// buildAlphabet returns the ASCII range 'A'..'z' (which includes [\]^_`),
// followed by the digits and the punctuation set.
func buildAlphabet() string {
	var sb strings.Builder

	for c := byte('A'); c <= 'z'; c++ {
		sb.WriteByte(c)
	}

	for c := byte('0'); c <= '9'; c++ {
		sb.WriteByte(c)
	}

	sb.WriteString(punctuation)

	return sb.String()
}

// Alphabet returns the characters the insecure fallback may emit.
func Alphabet() string {
	return alphabet
}

// Insecure builds printable values from the alphabet with math/rand.
// It is not suitable for anything secret.
type Insecure struct {
	// legacyRange restricts indices to [0, n), reproducing stored values
	// generated by the older implementation. Only the first n alphabet
	// characters are then reachable.
	legacyRange bool
	intN        func(int) int
}

// NewInsecure returns an Insecure source. See WithLegacyIndexRange.
func NewInsecure(legacyRange bool) *Insecure {
	return &Insecure{legacyRange: legacyRange, intN: rand.IntN}
}

// Name returns "math/rand".
func (*Insecure) Name() string {
	return "math/rand"
}

// Generate returns n alphabet characters.
func (s *Insecure) Generate(n int) ([]byte, error) {
	limit := len(alphabet)
	if s.legacyRange {
		limit = min(n, limit)
	}

	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[s.intN(limit)]
	}

	return out, nil
}

package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	// KeySize is the key length of the default suite.
	KeySize = 32
	// IVSize is the IV length of every AES-CBC suite.
	IVSize = aes.BlockSize
	// DefaultPaddingBlockSize is the multiple plaintext is NUL-padded to.
	DefaultPaddingBlockSize = 8
	// DefaultSuiteName is the name of the AES-256-CBC suite.
	DefaultSuiteName = "aes-256-cbc"
)

// Suite describes a block cipher in CBC mode and the sizes it requires.
type Suite struct {
	Name    string
	KeySize int
	IVSize  int

	newBlock func(key []byte) (cipher.Block, error)
}

// Block returns the block cipher for key.
func (s Suite) Block(key []byte) (cipher.Block, error) {
	if len(key) != s.KeySize {
		return nil, fmt.Errorf("%w: %w: expected %d, got %d", ErrCipherFailure, ErrInvalidKeySize, s.KeySize, len(key))
	}

	block, err := s.newBlock(key)
	if err != nil {
		return nil, fmt.Errorf("%w: creating cipher: %w", ErrCipherFailure, err)
	}

	return block, nil
}

func aesSuite(keySize int) Suite {
	return Suite{
		Name:     fmt.Sprintf("aes-%d-cbc", keySize*8),
		KeySize:  keySize,
		IVSize:   aes.BlockSize,
		newBlock: aes.NewCipher,
	}
}

//nolint:gochecknoglobals
var (
	suites = map[string]Suite{
		"aes-128-cbc": aesSuite(16),
		"aes-192-cbc": aesSuite(24),
		"aes-256-cbc": aesSuite(32),
	}

	aliases = map[string]string{
		"aes128": "aes-128-cbc",
		"aes192": "aes-192-cbc",
		"aes256": "aes-256-cbc",
	}
)

// LookupSuite resolves a cipher name, such as "aes-256-cbc" or "AES256", case-insensitively.
func LookupSuite(name string) (Suite, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if canonical, ok := aliases[key]; ok {
		key = canonical
	}

	suite, ok := suites[key]
	if !ok {
		return Suite{}, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
	}

	return suite, nil
}

// DefaultSuite returns AES-256-CBC.
func DefaultSuite() Suite {
	return suites[DefaultSuiteName]
}

// SuiteNames returns the canonical names of all registered suites, sorted.
func SuiteNames() []string {
	names := lo.Keys(suites)

	slices.Sort(names)

	return names
}

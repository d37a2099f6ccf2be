package encryption

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/idelchi/gocbc/pkg/random"
)

// Encryptor encrypts and decrypts strings with a CBC suite and generates keys and IVs.
// It holds no mutable state and is safe for concurrent use.
type Encryptor struct {
	// suite is the block cipher and its key/IV sizes
	suite Suite

	// paddingBlockSize is the multiple plaintext is NUL-padded to
	paddingBlockSize int

	// chain produces IVs
	chain *random.Chain

	// keys produces key material, without fallback
	keys random.Source
}

// Option configures an Encryptor.
type Option func(*Encryptor)

// WithSuite selects the cipher suite.
func WithSuite(suite Suite) Option {
	return func(e *Encryptor) {
		e.suite = suite
	}
}

// WithChain sets the randomness chain used for IVs.
func WithChain(chain *random.Chain) Option {
	return func(e *Encryptor) {
		e.chain = chain
	}
}

// WithKeySource sets the source used for keys.
func WithKeySource(source random.Source) Option {
	return func(e *Encryptor) {
		e.keys = source
	}
}

// WithPaddingBlockSize sets the multiple plaintext is padded to.
func WithPaddingBlockSize(size int) Option {
	return func(e *Encryptor) {
		e.paddingBlockSize = size
	}
}

// New returns an Encryptor for AES-256-CBC unless configured otherwise.
func New(opts ...Option) (*Encryptor, error) {
	encryptor := newDefault()

	for _, opt := range opts {
		opt(encryptor)
	}

	if encryptor.paddingBlockSize <= 0 {
		return nil, fmt.Errorf("padding block size must be positive, got %d", encryptor.paddingBlockSize)
	}

	if encryptor.suite.newBlock == nil {
		return nil, fmt.Errorf("%w: suite %q has no block cipher", ErrUnknownSuite, encryptor.suite.Name)
	}

	if encryptor.chain == nil {
		return nil, errors.New("randomness chain is required")
	}

	if encryptor.keys == nil {
		return nil, errors.New("key source is required")
	}

	return encryptor, nil
}

func newDefault() *Encryptor {
	return &Encryptor{
		suite:            DefaultSuite(),
		paddingBlockSize: DefaultPaddingBlockSize,
		chain:            random.NewChain(),
		keys:             random.NewPrimary(),
	}
}

// Suite returns the configured suite.
func (e *Encryptor) Suite() Suite {
	return e.suite
}

// Pad pads plainText to the configured padding block size.
func (e *Encryptor) Pad(plainText []byte) []byte {
	return Pad(plainText, e.paddingBlockSize)
}

// Encrypt pads plainText, encrypts it with key and iv and returns the
// ciphertext as standard base64.
func (e *Encryptor) Encrypt(plainText, key, iv []byte) (string, error) {
	if err := e.checkIV(iv); err != nil {
		return "", err
	}

	block, err := e.suite.Block(key)
	if err != nil {
		return "", err
	}

	ciphertext, err := encryptCBC(block, e.Pad(plainText), iv)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt decodes the base64 ciphertext and decrypts it with key and iv.
// The result still carries the NUL padding added by Encrypt.
func (e *Encryptor) Decrypt(encoded string, key, iv []byte) ([]byte, error) {
	if err := e.checkIV(iv); err != nil {
		return nil, err
	}

	block, err := e.suite.Block(key)
	if err != nil {
		return nil, err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding base64: %w", ErrDecodeFailure, err)
	}

	return decryptCBC(block, ciphertext, iv)
}

// GenerateKey returns a new random key for the suite.
// Only the key source is consulted; there is no fallback.
func (e *Encryptor) GenerateKey() ([]byte, error) {
	key, err := e.keys.Generate(e.suite.KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: generating key: %w", ErrRandomnessUnavailable, err)
	}

	if len(key) != e.suite.KeySize {
		return nil, fmt.Errorf("%w: generating key: got %d of %d bytes", ErrRandomnessUnavailable, len(key), e.suite.KeySize)
	}

	return key, nil
}

// GenerateIV returns a new IV for the suite from the randomness chain.
// With allowLessSecure, a non-cryptographic value made of printable
// characters is returned when every secure source fails.
func (e *Encryptor) GenerateIV(allowLessSecure bool) ([]byte, error) {
	iv, err := e.chain.Generate(e.suite.IVSize, allowLessSecure)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomnessUnavailable, err)
	}

	return iv, nil
}

func (e *Encryptor) checkIV(iv []byte) error {
	if len(iv) != e.suite.IVSize {
		return fmt.Errorf("%w: %w: expected %d, got %d", ErrCipherFailure, ErrInvalidIVSize, e.suite.IVSize, len(iv))
	}

	return nil
}

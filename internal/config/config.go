// Package config holds the command-line configuration and its validation.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/key"
	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/gocbc/pkg/encryption"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Mode selects the operation a command runs.
type Mode string

const (
	// ModeKey generates a key.
	ModeKey Mode = "key"
	// ModeIV generates an IV.
	ModeIV Mode = "iv"
	// ModeEncrypt encrypts values.
	ModeEncrypt Mode = "encrypt"
	// ModeDecrypt decrypts values.
	ModeDecrypt Mode = "decrypt"
)

// Config holds the configuration from flags and GOCBC_* environment variables.
type Config struct {
	// Show prints the configuration and exits
	Show bool

	// Common flags
	Cipher   string `validate:"required,cipher"`
	Parallel int    `validate:"min=1"`
	Quiet    bool
	Stats    bool
	Verbose  bool
	EnvFile  string `mapstructure:"env-file" validate:"omitempty,file"`

	// Key material, hex encoded
	Key string `mask:"fixed" validate:"omitempty,hexadecimal"`
	IV  string `validate:"omitempty,hexadecimal"`

	// IV generation
	AllowLessSecure bool `mapstructure:"allow-less-secure"`
	LegacyIndex     bool `mapstructure:"legacy-index"`

	// Decryption
	Trim bool

	// Value sources
	From   string   `validate:"omitempty,file"`
	Values []string `mapstructure:"-"`

	Mode Mode `mapstructure:"-" validate:"oneof=key iv encrypt decrypt"`

	secret key.Key
	vector key.Key
}

// Display returns the value of the Show field.
func (c *Config) Display() bool {
	return c.Show
}

// Validate checks config against its struct tags and, for encrypt and
// decrypt, decodes the key and IV against the selected suite.
// It returns a wrapped ErrUsage if any rule is violated.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerCipher(validator); err != nil {
		return fmt.Errorf("registering cipher: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	case len(errs) > 1:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	if err := c.resolve(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return nil
}

// KeyBytes returns the decoded key. Only set after Validate in encrypt or decrypt mode.
func (c *Config) KeyBytes() []byte {
	return c.secret
}

// IVBytes returns the decoded IV. Only set after Validate in encrypt or decrypt mode.
func (c *Config) IVBytes() []byte {
	return c.vector
}

func (c *Config) resolve() error {
	if c.Mode != ModeEncrypt && c.Mode != ModeDecrypt {
		return nil
	}

	suite, err := encryption.LookupSuite(c.Cipher)
	if err != nil {
		return err
	}

	if c.secret, err = fromHex("key", c.Key, suite.KeySize); err != nil {
		return err
	}

	if c.vector, err = fromHex("IV", c.IV, suite.IVSize); err != nil {
		return err
	}

	if len(c.Values) == 0 && c.From == "" {
		return errors.New("no values to process: pass them as arguments or with --from")
	}

	return nil
}

func fromHex(name, value string, size int) (key.Key, error) {
	if value == "" {
		return nil, fmt.Errorf("%s is required", name)
	}

	decoded, err := key.FromHex(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", name, err)
	}

	if len(decoded) != size {
		return nil, fmt.Errorf("%s must be %d bytes (%d hex characters), got %d bytes", name, size, 2*size, len(decoded))
	}

	return decoded, nil
}

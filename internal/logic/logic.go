// Package logic implements the key generation and batch encryption/decryption behind the commands.
package logic

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/idelchi/gocbc/internal/config"
	"github.com/idelchi/gocbc/internal/values"
	"github.com/idelchi/gocbc/pkg/encryption"
	"github.com/idelchi/gocbc/pkg/random"
)

// ErrProcessing is returned when at least one value in a batch failed.
var ErrProcessing = errors.New("processing values")

// NewEncryptor builds an encryptor for the configured suite and IV generation settings.
// Keys come from gogen's crypto/rand-backed key.New, IVs from the fallback chain.
func NewEncryptor(cfg *config.Config, logger *slog.Logger) (*encryption.Encryptor, error) {
	suite, err := encryption.LookupSuite(cfg.Cipher)
	if err != nil {
		return nil, err
	}

	chain := random.NewChain(
		random.WithLogger(logger),
		random.WithLegacyIndexRange(cfg.LegacyIndex),
	)

	keys := random.Func{
		Label: "gogen/key",
		Fn: func(n int) ([]byte, error) {
			return key.New(n)
		},
	}

	enc, err := encryption.New(
		encryption.WithSuite(suite),
		encryption.WithChain(chain),
		encryption.WithKeySource(keys),
	)
	if err != nil {
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	return enc, nil
}

// RunKey writes a new hex-encoded key to out.
func RunKey(cfg *config.Config, out io.Writer) error {
	enc, err := NewEncryptor(cfg, slog.Default())
	if err != nil {
		return err
	}

	secret, err := enc.GenerateKey()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, key.Key(secret).AsHex())

	return nil
}

// RunIV writes a new hex-encoded IV to out.
func RunIV(cfg *config.Config, out io.Writer) error {
	enc, err := NewEncryptor(cfg, slog.Default())
	if err != nil {
		return err
	}

	iv, err := enc.GenerateIV(cfg.AllowLessSecure)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, key.Key(iv).AsHex())

	return nil
}

type result struct {
	output []byte
	err    error
}

// Run encrypts or decrypts every value, depending on cfg.Mode, and writes one
// line per value to out in input order. Failures are reported on errOut and
// do not stop the remaining values.
//
//nolint:cyclop // batch pipeline with per-value reporting
func Run(cfg *config.Config, out, errOut io.Writer) error {
	start := time.Now()

	inputs, err := values.Collect(cfg.Values, cfg.From)
	if err != nil {
		return fmt.Errorf("collecting values: %w", err)
	}

	enc, err := NewEncryptor(cfg, slog.Default())
	if err != nil {
		return err
	}

	process := encryptFunc(enc, cfg)
	if cfg.Mode == config.ModeDecrypt {
		process = decryptFunc(enc, cfg)
	}

	results := make([]result, len(inputs))

	group := errgroup.Group{}
	group.SetLimit(max(1, cfg.Parallel))

	for i, input := range inputs {
		group.Go(func() error {
			output, err := process(input)
			results[i] = result{output: output, err: err}

			return err
		})
	}

	err = group.Wait()

	var st stats

	st.values = len(inputs)

	for i, res := range results {
		st.inBytes += int64(len(inputs[i]))

		if res.err != nil {
			st.errored++

			fmt.Fprintf(errOut, "Error processing value %d: %v\n", i+1, res.err)

			continue
		}

		st.outBytes += int64(len(res.output))

		fmt.Fprintf(out, "%s\n", res.output)
	}

	if cfg.Stats {
		st.duration = time.Since(start)
		printStats(errOut, st)
	}

	if err != nil {
		return fmt.Errorf("%w: %d of %d failed: %w", ErrProcessing, st.errored, st.values, err)
	}

	return nil
}

func encryptFunc(enc *encryption.Encryptor, cfg *config.Config) func(string) ([]byte, error) {
	return func(input string) ([]byte, error) {
		encoded, err := enc.Encrypt([]byte(input), cfg.KeyBytes(), cfg.IVBytes())
		if err != nil {
			return nil, err
		}

		return []byte(encoded), nil
	}
}

func decryptFunc(enc *encryption.Encryptor, cfg *config.Config) func(string) ([]byte, error) {
	return func(input string) ([]byte, error) {
		plain, err := enc.Decrypt(input, cfg.KeyBytes(), cfg.IVBytes())
		if err != nil {
			return nil, err
		}

		if cfg.Trim {
			plain = encryption.TrimPadding(plain)
		}

		return plain, nil
	}
}

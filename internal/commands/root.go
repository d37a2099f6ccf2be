package commands

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/gocbc/internal/config"
	"github.com/idelchi/gocbc/pkg/encryption"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version, loadEnvFile, setupLogging)

	root.Use = "gocbc [flags] command [flags]"
	root.Short = "AES-CBC string encryption utility"
	root.Long = `Encrypts and decrypts strings with AES in CBC mode.
Provides commands for key and IV generation, encryption, and decryption.

Plaintext is padded with NUL bytes to a multiple of 8 before encryption,
and decrypted output keeps that padding unless --trim is given.

Every flag can be set through a GOCBC_ prefixed environment variable.`

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().
		String("cipher", encryption.DefaultSuiteName, fmt.Sprintf("Cipher suite, one of %s", strings.Join(encryption.SuiteNames(), ", ")))
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress warnings")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics to stderr")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().String("env-file", "", "Load GOCBC_* variables from a dotenv file; set variables take precedence")

	root.AddCommand(
		NewKeyCommand(cfg),
		NewIVCommand(cfg),
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
	)

	return root
}

// loadEnvFile loads the dotenv file given with --env-file, if any.
func loadEnvFile(_ *cobra.Command, _ []string) error {
	path := viper.GetString("env-file")
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %q: %w", path, err)
	}

	return nil
}

// setupLogging installs the default logger on stderr.
// Warnings are shown by default, debug output with --verbose and only errors with --quiet.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level := slog.LevelWarn

	switch {
	case viper.GetBool("verbose"):
		level = slog.LevelDebug
	case viper.GetBool("quiet"):
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	slog.SetDefault(slog.New(handler))

	return nil
}

// preRun returns a PreRunE handler that sets the mode, resolves positional args
// into cfg.Values and validates the configuration.
func preRun(cfg *config.Config, mode config.Mode) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Mode = mode
		cfg.Values = args

		return cobraext.Validate(cfg, cfg)
	}
}

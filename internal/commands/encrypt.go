package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocbc/internal/config"
	"github.com/idelchi/gocbc/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [values...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt values to base64",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, config.ModeEncrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addMaterialFlags(cmd)

	return cmd
}

// addMaterialFlags registers the key, IV and value source flags shared by encrypt and decrypt.
func addMaterialFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "Encryption key, hex-encoded")
	cmd.Flags().String("iv", "", "Initialization vector, hex-encoded")
	cmd.Flags().StringP("from", "f", "", "JSONC file with an array of values to process after the positional ones")
}

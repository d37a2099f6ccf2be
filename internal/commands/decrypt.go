package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocbc/internal/config"
	"github.com/idelchi/gocbc/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [values...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt base64 values",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg, config.ModeDecrypt),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addMaterialFlags(cmd)
	cmd.Flags().BoolP("trim", "t", false, "Strip the trailing NUL padding from decrypted values")

	return cmd
}

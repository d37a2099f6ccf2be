package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocbc/internal/config"
	"github.com/idelchi/gocbc/internal/logic"
)

// NewIVCommand creates a new cobra command for the iv subcommand.
func NewIVCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iv [flags]",
		Short: "Generate a new hex-encoded IV",
		Long: `Generate a new hex-encoded IV.

Sources are tried in order: crypto/rand, Tink, getrandom(2). If all of them
fail, the command errors out unless --allow-less-secure is set, in which case
a non-cryptographic IV made of printable characters is returned.`,
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, config.ModeIV),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunIV(cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("allow-less-secure", false, "Fall back to a non-cryptographic IV when no secure source works")
	cmd.Flags().Bool("legacy-index", false, "Only draw the fallback IV from the first IV-size characters of the alphabet")

	return cmd
}

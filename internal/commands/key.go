package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gocbc/internal/config"
	"github.com/idelchi/gocbc/internal/logic"
)

// NewKeyCommand creates a new cobra command for the key subcommand.
func NewKeyCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "key",
		Aliases: []string{"gen"},
		Short:   "Generate a new hex-encoded key",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg, config.ModeKey),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunKey(cfg, cmd.OutOrStdout())
		},
	}
}

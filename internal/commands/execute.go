package commands

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/cobraext"

	"github.com/idelchi/gocbc/internal/config"
)

// Execute builds the command tree and runs it.
// Showing the configuration with --show is not an error.
func Execute(version string) error {
	cfg := &config.Config{}
	root := NewRootCommand(cfg, version)

	switch err := root.Execute(); {
	case errors.Is(err, cobraext.ErrExitGracefully):
		return nil
	case err != nil:
		return fmt.Errorf("executing command: %w", err)
	default:
		return nil
	}
}

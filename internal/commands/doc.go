// Package commands provides the command-line interface for the gocbc tool.
//
// It implements commands for:
//   - key generation
//   - IV generation
//   - encryption
//   - decryption
//
// Flags are bound through viper by cobraext, so every flag can also be set through a
// GOCBC_ prefixed environment variable (e.g. GOCBC_KEY, GOCBC_ALLOW_LESS_SECURE).
package commands

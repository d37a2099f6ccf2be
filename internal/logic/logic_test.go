package logic_test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gocbc/internal/config"
	"github.com/idelchi/gocbc/internal/logic"
)

const (
	testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testIV  = "000102030405060708090a0b0c0d0e0f"
)

func newConfig(t *testing.T, mode config.Mode, values ...string) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Cipher:   "aes-256-cbc",
		Parallel: 4,
		Key:      testKey,
		IV:       testIV,
		Values:   values,
		Mode:     mode,
	}

	require.NoError(t, cfg.Validate(cfg))

	return cfg
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestRunKey(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]int{"aes-256-cbc": 32, "aes-128-cbc": 16} {
		var out bytes.Buffer

		cfg := &config.Config{Cipher: name, Parallel: 1, Mode: config.ModeKey}

		require.NoError(t, logic.RunKey(cfg, &out))

		key, err := hex.DecodeString(strings.TrimSpace(out.String()))
		require.NoError(t, err)
		assert.Len(t, key, want, name)
	}
}

func TestRunIV(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cfg := &config.Config{Cipher: "aes-256-cbc", Parallel: 1, Mode: config.ModeIV}

	require.NoError(t, logic.RunIV(cfg, &out))

	iv, err := hex.DecodeString(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Len(t, iv, 16)
}

func TestRun_EncryptKnownValue(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	require.NoError(t, logic.Run(newConfig(t, config.ModeEncrypt, "hello"), &out, &errOut))

	assert.Equal(t, "/j8VxwvwPpRfbdFPdIybVA==\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_DecryptKeepsPadding(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	require.NoError(t, logic.Run(newConfig(t, config.ModeDecrypt, "/j8VxwvwPpRfbdFPdIybVA=="), &out, &errOut))
	assert.Equal(t, "hello\x00\x00\x00\n", out.String())

	out.Reset()

	cfg := newConfig(t, config.ModeDecrypt, "/j8VxwvwPpRfbdFPdIybVA==")
	cfg.Trim = true

	require.NoError(t, logic.Run(cfg, &out, &errOut))
	assert.Equal(t, "hello\n", out.String())
}

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()

	inputs := make([]string, 50)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("value-%02d", i)
	}

	var encrypted, errOut bytes.Buffer

	require.NoError(t, logic.Run(newConfig(t, config.ModeEncrypt, inputs...), &encrypted, &errOut))

	var decrypted bytes.Buffer

	cfg := newConfig(t, config.ModeDecrypt, lines(&encrypted)...)
	cfg.Trim = true

	require.NoError(t, logic.Run(cfg, &decrypted, &errOut))
	assert.Equal(t, inputs, lines(&decrypted))
}

func TestRun_ReportsFailuresAndContinues(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer

	cfg := newConfig(t, config.ModeDecrypt, "not base64!", "/j8VxwvwPpRfbdFPdIybVA==")
	cfg.Trim = true
	cfg.Stats = true

	err := logic.Run(cfg, &out, &errOut)
	require.ErrorIs(t, err, logic.ErrProcessing)
	assert.ErrorContains(t, err, "1 of 2 failed")

	assert.Equal(t, "hello\n", out.String())
	assert.Contains(t, errOut.String(), "Error processing value 1")
	assert.Contains(t, errOut.String(), "Errors:    1")
}

func TestRun_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "values.jsonc")
	require.NoError(t, os.WriteFile(path, []byte("// greeting\n[\"hello\",]\n"), 0o600))

	cfg := newConfig(t, config.ModeEncrypt, "hello")
	cfg.From = path

	var out, errOut bytes.Buffer

	require.NoError(t, logic.Run(cfg, &out, &errOut))
	assert.Equal(t, []string{"/j8VxwvwPpRfbdFPdIybVA==", "/j8VxwvwPpRfbdFPdIybVA=="}, lines(&out))
}

func TestRun_Stats(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, config.ModeEncrypt, "hello", "world")
	cfg.Stats = true

	var out, errOut bytes.Buffer

	require.NoError(t, logic.Run(cfg, &out, &errOut))

	for _, want := range []string{"Values:    2", "Processed: 2", "Errors:    0", "Input:     10 B", "Output:    48 B"} {
		assert.Contains(t, errOut.String(), want)
	}
}

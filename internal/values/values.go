// Package values collects the strings a batch command operates on.
package values

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ErrEmpty is returned for a values file whose array holds no entries.
var ErrEmpty = errors.New("no values")

// Load reads a JSONC file holding a non-empty array of strings.
// Comments and trailing commas are allowed; null, numbers and nested arrays are not.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading values file %q: %w", path, err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing values file %q: expected an array of strings: %w", path, err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("values file %q: %w", path, ErrEmpty)
	}

	values := make([]string, len(raw))

	for i, entry := range raw {
		if err := json.Unmarshal(entry, &values[i]); err != nil || string(entry) == "null" {
			return nil, fmt.Errorf("values file %q: entry %d is not a string: %s", path, i+1, entry)
		}
	}

	return values, nil
}

// Collect returns args followed by the values in the file at path, if any.
func Collect(args []string, path string) ([]string, error) {
	collected := append([]string{}, args...)

	if path == "" {
		return collected, nil
	}

	loaded, err := Load(path)
	if err != nil {
		return nil, err
	}

	return append(collected, loaded...), nil
}

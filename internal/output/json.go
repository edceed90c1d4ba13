package output

import (
	"encoding/json"
	"os"
)

// PrintJSON outputs any value as formatted JSON to stdout.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintJSONCompact outputs any value as compact JSON to stdout. Used when
// stdout is a pipe so downstream tools get one object per line.
func PrintJSONCompact(v interface{}) error {
	return json.NewEncoder(os.Stdout).Encode(v)
}

// FormatJSON returns formatted JSON as a string.
func FormatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// PrintJSONError outputs an error as JSON to stdout.
func PrintJSONError(err error, exitCode int) {
	PrintJSON(map[string]interface{}{
		"error":    err.Error(),
		"exitCode": exitCode,
	})
}

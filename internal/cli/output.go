package cli

import (
	"encoding/json"
	"fmt"
)

// printJSON marshals v with indentation and prints it to stdout.
func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

package utils

import (
	"encoding/json"
	"fmt"
)

// MustMarshalJSON marshals v to JSON and panics on failure. Intended for
// static payloads and test fixtures where failure is a programming error.
func MustMarshalJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal JSON: %v", err))
	}
	return data
}

// UnmarshalJSON unmarshals data into v, wrapping the error with context.
func UnmarshalJSON(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return nil
}

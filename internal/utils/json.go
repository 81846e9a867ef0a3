package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// ReadFile reads a config file, wrapping errors with the path
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// DecodeJSON unmarshals data read from path into target
func DecodeJSON(path string, data []byte, target interface{}) error {
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

package wificreds

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseTable decodes a credential table from JSON: an array of objects with
// "name", "ssid", and "password" fields. It only validates the JSON shape;
// content checks (empty SSID or password) remain query-time concerns via
// Registry.IsValid.
func ParseTable(data []byte) ([]CredentialSet, error) {
	var table []CredentialSet
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse credential table: %w", err)
	}
	return table, nil
}

// LoadTable reads and parses a credential table from a JSON file. The file
// plays the role of a gitignored secrets file: it keeps network credentials
// out of version-controlled application code.
func LoadTable(path string) ([]CredentialSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credential table %q: %w", path, err)
	}
	return ParseTable(data)
}

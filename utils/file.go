package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var supportedDataExtensions = map[string]bool{
	".json": true,
}

// IsDataFile checks if the filename has an extension the importer understands
func IsDataFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return supportedDataExtensions[ext]
}

// ReadJSONRecords reads a file holding a top-level JSON array and returns
// each element undecoded, in file order.
func ReadJSONRecords(path string) ([]json.RawMessage, error) {
	if !IsDataFile(path) {
		return nil, fmt.Errorf("unsupported data file %s: expected .json", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s as a JSON array: %w", path, err)
	}
	return records, nil
}

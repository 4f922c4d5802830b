package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Load decodes a JSON array of records. Titles are trimmed and must be
// non-empty; records without an ID are assigned a fresh UUID so downstream
// consumers can always key on it.
func Load(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range records {
		records[i].Title = strings.TrimSpace(records[i].Title)
		if records[i].Title == "" {
			return nil, fmt.Errorf("catalog record %d: title is required", i)
		}
		if strings.TrimSpace(records[i].ID) == "" {
			records[i].ID = uuid.NewString()
		}
	}
	return records, nil
}

// LoadFile reads and decodes the JSON catalog at path.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	records, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

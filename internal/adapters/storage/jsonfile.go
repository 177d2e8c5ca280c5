package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ReadCollection loads the JSON array stored at path. A missing or empty
// file yields an empty slice. Content that fails to decode as an array
// also yields an empty slice, together with the decode error; the error is
// advisory (repositories log it at debug level) and is never surfaced past
// the repository boundary.
func ReadCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return []T{}, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// WriteCollection serializes items with indentation and rewrites the whole
// file. The write is not atomic: a crash mid-write can leave a truncated
// file behind, which a later ReadCollection treats as empty.
func WriteCollection[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}

	return nil
}

// Package export serializes a selection set into the JSON layouts the
// external mod consumes: a flat config file, or a Content Patcher
// manifest+content bundle.
package export

import (
	"encoding/json"
	"errors"
	"os"
)

var (
	ErrNoDestination  = errors.New("no export destination set")
	ErrEmptySelection = errors.New("selection is empty")
)

// writeJSON marshals v with indentation and writes it to path. No
// cleanup happens on failure; callers treat success as all-files-written.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}

package scan

import (
	"fmt"
	"os"
	"sort"
)

// DirectoryReadError is returned when the source directory can't be listed.
type DirectoryReadError struct {
	Dir string
	Err error
}

var _ error = (*DirectoryReadError)(nil)

func (e *DirectoryReadError) Error() string {
	return fmt.Sprintf("Failed to read directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryReadError) Unwrap() error {
	return e.Err
}

// Sources lists dir (non-recursive) and returns the names of all entries the
// filter accepts, sorted by name.
func Sources(dir string, filter Filter) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DirectoryReadError{Dir: dir, Err: err}
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if filter.Ok(entry) {
			result = append(result, entry.Name())
		}
	}

	sort.Strings(result)
	return result, nil
}

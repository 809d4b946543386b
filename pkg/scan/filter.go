// Package scan finds the stylesheet sources that should be compiled.
package scan

import (
	"io/fs"
	"strings"
)

const DefaultIgnorePrefix = "_"

// DefaultExtensions lists the source suffixes the Sass compiler accepts
var DefaultExtensions = []string{".scss", ".sass"}

// Filter selects compilable sources from a directory listing. Names starting
// with IgnorePrefix (usually partials) are skipped.
type Filter struct {
	IgnorePrefix string
	Extensions   []string
}

func DefaultFilter() Filter {
	return Filter{
		IgnorePrefix: DefaultIgnorePrefix,
		Extensions:   DefaultExtensions,
	}
}

// Match reports whether the file name should be compiled.
func (f Filter) Match(name string) bool {
	if f.IgnorePrefix != "" && strings.HasPrefix(name, f.IgnorePrefix) {
		return false
	}

	for _, ext := range f.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Ok is Match for directory entries. Directories never match.
func (f Filter) Ok(entry fs.DirEntry) bool {
	return !entry.IsDir() && f.Match(entry.Name())
}

// Names applies Match to a plain list of names and keeps the order.
func (f Filter) Names(names []string) []string {
	result := make([]string, 0, len(names))
	for _, name := range names {
		if f.Match(name) {
			result = append(result, name)
		}
	}
	return result
}

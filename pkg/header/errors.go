package header

import "fmt"

const malformedHeaderMsg = "First line is not a block-style comment"

// MalformedHeaderError is returned when the first line of a source file isn't
// a single-line /* ... */ comment. The message is prefixed with "<Path>: "
// when Path is set.
type MalformedHeaderError struct {
	Path string
}

var _ error = (*MalformedHeaderError)(nil)

func (e *MalformedHeaderError) Error() string {
	if e.Path == "" {
		return malformedHeaderMsg
	}
	return fmt.Sprintf("%s: %s", e.Path, malformedHeaderMsg)
}

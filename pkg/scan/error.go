package scan

import (
	"errors"
	"fmt"
)

// Error is a scan failure tagged with the source location where it occurred.
// Every failure the rendering core reports flows through this type, so callers
// can always recover (file, line, column, message) without parsing strings.
type Error struct {
	// File is the name of the source file being scanned.
	File string

	// Line is the 1-based line number of the failure.
	Line int

	// Column is the 1-based column number of the failure.
	Column int

	// Msg describes what went wrong.
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Msg)
}

// AsError unwraps err into a located *Error, reporting whether one was
// found anywhere in the chain.
func AsError(err error) (*Error, bool) {
	var scanErr *Error
	if errors.As(err, &scanErr) {
		return scanErr, true
	}
	return nil, false
}

// Errorf builds an Error at the given location.
func Errorf(loc Location, format string, args ...any) *Error {
	return &Error{
		File:   loc.File,
		Line:   loc.Line,
		Column: loc.Column,
		Msg:    fmt.Sprintf(format, args...),
	}
}

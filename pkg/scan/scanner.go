// Package scan provides the character-level scanning substrate shared by the
// Markdown renderer, the source highlighter, and the MathML renderer.
//
// A Scanner is a cursor over an immutable byte buffer. It never copies the
// buffer: the Spans it hands out borrow directly from the source and are only
// valid while the source is. Locations are derived from the offset on demand
// by counting newlines, so they can never go stale.
package scan

import (
	"bytes"
	"strconv"
)

// Location is a 1-based position in a named source buffer.
type Location struct {
	File   string
	Line   int
	Column int
}

// Span is a borrowed view into a Scanner's source plus its start location.
type Span struct {
	Text []byte
	Loc  Location
}

// Scanner is a cursor over an immutable byte buffer.
// The zero value is not usable; construct with New.
type Scanner struct {
	src  []byte
	off  int
	name string
}

// New returns a Scanner over src. name is used in error locations.
func New(name string, src []byte) *Scanner {
	return &Scanner{src: src, name: name}
}

// Name returns the source name given to New.
func (s *Scanner) Name() string { return s.name }

// Offset returns the current cursor position.
func (s *Scanner) Offset() int { return s.off }

// Seek moves the cursor to off. Used by callers that scan speculatively and
// roll back; off must come from a prior Offset call.
func (s *Scanner) Seek(off int) {
	if off < 0 || off > len(s.src) {
		panic("scan: seek out of range " + strconv.Itoa(off))
	}
	s.off = off
}

// Text returns the source bytes in [start, end). The slice borrows from the
// source buffer; offsets must come from prior Offset calls.
func (s *Scanner) Text(start, end int) []byte { return s.src[start:end] }

// Rest returns the unconsumed remainder of the source. The slice borrows
// from the source buffer.
func (s *Scanner) Rest() []byte { return s.src[s.off:] }

// EOF reports whether the cursor is at end of input.
func (s *Scanner) EOF() bool { return s.off >= len(s.src) }

// Peek returns the byte at the cursor without advancing.
// ok is false at end of input.
func (s *Scanner) Peek() (b byte, ok bool) {
	if s.off >= len(s.src) {
		return 0, false
	}
	return s.src[s.off], true
}

// PeekAt returns the byte n positions past the cursor without advancing.
func (s *Scanner) PeekAt(n int) (b byte, ok bool) {
	if s.off+n >= len(s.src) {
		return 0, false
	}
	return s.src[s.off+n], true
}

// Next returns the byte at the cursor and advances past it.
// ok is false at end of input; the cursor does not move past the end.
func (s *Scanner) Next() (b byte, ok bool) {
	if s.off >= len(s.src) {
		return 0, false
	}
	b = s.src[s.off]
	s.off++
	return b, true
}

// Consume advances past b if it is the next byte. Reports whether it did.
func (s *Scanner) Consume(b byte) bool {
	if s.off < len(s.src) && s.src[s.off] == b {
		s.off++
		return true
	}
	return false
}

// ConsumeString advances past str if the input starts with it at the cursor.
// Reports whether it did; the cursor is unchanged on a failed match.
func (s *Scanner) ConsumeString(str string) bool {
	if len(str) <= len(s.src)-s.off && string(s.src[s.off:s.off+len(str)]) == str {
		s.off += len(str)
		return true
	}
	return false
}

// ConsumeUntil scans forward for delim. On success it returns the span
// between the cursor and the delimiter and leaves the cursor just past the
// delimiter. If delim never appears the cursor is unchanged and ok is false,
// so the caller can fall back to a different scan.
func (s *Scanner) ConsumeUntil(delim byte) (span Span, ok bool) {
	i := bytes.IndexByte(s.src[s.off:], delim)
	if i < 0 {
		return Span{}, false
	}
	span = Span{Text: s.src[s.off : s.off+i], Loc: s.Location()}
	s.off += i + 1
	return span, true
}

// ConsumeLine consumes through the next newline and returns the text before
// it. At end of input without a trailing newline it returns the remaining
// text. The returned span excludes the newline itself.
func (s *Scanner) ConsumeLine() Span {
	loc := s.Location()
	i := bytes.IndexByte(s.src[s.off:], '\n')
	if i < 0 {
		span := Span{Text: s.src[s.off:], Loc: loc}
		s.off = len(s.src)
		return span
	}
	span := Span{Text: s.src[s.off : s.off+i], Loc: loc}
	s.off += i + 1
	return span
}

// Expect consumes b or fails with a location-tagged error showing what was
// found instead.
func (s *Scanner) Expect(b byte) error {
	if s.Consume(b) {
		return nil
	}
	return Errorf(s.Location(), "expected %s, got %s", escape(string(b)), s.found())
}

// ExpectString consumes str or fails with a location-tagged error.
func (s *Scanner) ExpectString(str string) error {
	if s.ConsumeString(str) {
		return nil
	}
	return Errorf(s.Location(), "expected %s, got %s", escape(str), s.found())
}

// Location derives the cursor's (line, column) by counting newlines in the
// consumed prefix. It is never cached, so it cannot disagree with the offset.
func (s *Scanner) Location() Location {
	return s.LocationAt(s.off)
}

// LocationAt derives the location of an arbitrary offset into the source.
func (s *Scanner) LocationAt(off int) Location {
	if off > len(s.src) {
		off = len(s.src)
	}
	line := 1 + bytes.Count(s.src[:off], []byte{'\n'})
	col := off - (bytes.LastIndexByte(s.src[:off], '\n') + 1) + 1
	return Location{File: s.name, Line: line, Column: col}
}

// Errorf builds a location-tagged error at the cursor.
func (s *Scanner) Errorf(format string, args ...any) *Error {
	return Errorf(s.Location(), format, args...)
}

// found describes the byte at the cursor for expectation failures.
func (s *Scanner) found() string {
	if s.off >= len(s.src) {
		return "end of input"
	}
	end := s.off + 1
	// Show a little context for string expectations.
	for end < len(s.src) && end-s.off < 8 && s.src[end] != '\n' {
		end++
	}
	return escape(string(s.src[s.off:end]))
}

func escape(str string) string {
	return strconv.Quote(str)
}

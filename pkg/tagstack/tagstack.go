// Package tagstack provides a fixed-capacity stack of markup tags that
// guarantees balanced open/close emission. The Markdown renderer drives one
// stack for block tags and one for inline tags; bounding the depth turns
// pathological nesting into a reported error instead of unbounded recursion.
package tagstack

import (
	"errors"
	"io"
)

// MaxDepth is the nesting limit. Input that nests deeper fails with
// ErrTooDeep rather than crashing.
const MaxDepth = 8

// ErrTooDeep is returned by Push when the stack is full.
var ErrTooDeep = errors.New("exceeded max tag depth")

// Tag is a markup element that knows how to emit its own open and close text.
type Tag interface {
	comparable
	OpenTag() string
	CloseTag() string
}

// Stack is a bounded LIFO of tags. The zero value is an empty stack ready
// for use; it allocates nothing.
type Stack[T Tag] struct {
	tags [MaxDepth]T
	n    int
}

// Len returns the current depth.
func (s *Stack[T]) Len() int { return s.n }

// Top returns the most recently pushed tag. ok is false when empty.
func (s *Stack[T]) Top() (tag T, ok bool) {
	if s.n == 0 {
		var zero T
		return zero, false
	}
	return s.tags[s.n-1], true
}

// At returns the tag at depth i, where 0 is the bottom of the stack.
func (s *Stack[T]) At(i int) T { return s.tags[i] }

// Push emits tag's open text to w and stores it.
func (s *Stack[T]) Push(w io.Writer, tag T) error {
	if err := s.PushSilent(tag); err != nil {
		return err
	}
	io.WriteString(w, tag.OpenTag())
	return nil
}

// PushSilent stores tag without emitting anything. Used for speculative
// lookahead where output must not be committed yet.
func (s *Stack[T]) PushSilent(tag T) error {
	if s.n == MaxDepth {
		return ErrTooDeep
	}
	s.tags[s.n] = tag
	s.n++
	return nil
}

// Pop removes the top tag and emits its close text to w.
// Popping an empty stack is a caller bug and panics.
func (s *Stack[T]) Pop(w io.Writer) {
	io.WriteString(w, s.PopSilent().CloseTag())
}

// PopSilent removes and returns the top tag without emitting anything.
func (s *Stack[T]) PopSilent() T {
	if s.n == 0 {
		panic("tagstack: pop of empty stack")
	}
	s.n--
	return s.tags[s.n]
}

// Truncate pops down to depth n, emitting close text top-to-bottom so the
// output stays properly nested.
func (s *Stack[T]) Truncate(w io.Writer, n int) {
	for s.n > n {
		s.Pop(w)
	}
}

// Toggle pops if the top equals tag, otherwise pushes. This is how inline
// emphasis works: the open and close syntax are the same character.
func (s *Stack[T]) Toggle(w io.Writer, tag T) error {
	if top, ok := s.Top(); ok && top == tag {
		s.Pop(w)
		return nil
	}
	return s.Push(w, tag)
}

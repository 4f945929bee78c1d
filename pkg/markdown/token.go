package markdown

import "github.com/inkwell-md/inkwell/pkg/scan"

// Kind classifies a token. The ordering is load-bearing: every block kind
// precedes every inline kind, and IsInline is an ordinal comparison. The
// tokenizer stops recognizing block syntax on a line once it has produced an
// inline token, and resumes at newlines, blockquote markers, and thematic
// breaks.
type Kind int

const (
	KindEOF Kind = iota
	KindNewline
	KindHeading // '#'..'######' followed by a space
	KindBullet  // '- '
	KindNumber  // digits followed by '. '
	KindQuote   // '>' with optional following space
	KindRule    // '* * *' with an immediate newline
	KindFence   // '```' opening fence line, with optional info string

	// Inline kinds from here down.
	KindText
	KindCode        // `code`
	KindEmphasis    // '_'
	KindStrong      // '**'
	KindEmDash      // '--'
	KindMathInline  // '$'
	KindMathDisplay // '$$'
	KindLinkOpen    // '[' with a resolvable target
	KindLinkClose   // ']' matching an open link
)

// IsInline reports whether k is an inline kind.
func (k Kind) IsInline() bool { return k >= KindText }

// Token is one lexical element of the Markdown source. Text is a borrowed
// slice for KindText and KindCode; Level is the heading level for
// KindHeading; Href is the resolved target for KindLinkOpen; Lang is the
// fence info string for KindFence.
type Token struct {
	Kind  Kind
	Loc   scan.Location
	Text  []byte
	Level int
	Href  string
	Lang  string
}

package markdown

import (
	"bytes"

	"github.com/inkwell-md/inkwell/pkg/scan"
)

// Links maps reference-link labels to their targets.
type Links map[string]string

// tokenizer turns the scanner's byte stream into Tokens. It recognizes block
// syntax only while blockAllowed is set: the flag holds from the start of a
// line until the first inline token, so "a - b" mid-sentence is text while
// "- b" at a line start is a bullet.
type tokenizer struct {
	sc           *scan.Scanner
	links        Links
	inlineOnly   bool
	blockAllowed bool

	peeked    Token
	peekErr   error
	hasPeeked bool

	// linkClose is the offset of the ']' ending the currently open link,
	// -1 when none. linkResume is where scanning continues after the
	// link-target syntax.
	linkClose  int
	linkResume int
}

func newTokenizer(sc *scan.Scanner, links Links, inlineOnly bool) *tokenizer {
	return &tokenizer{
		sc:           sc,
		links:        links,
		inlineOnly:   inlineOnly,
		blockAllowed: !inlineOnly,
		linkClose:    -1,
	}
}

func (t *tokenizer) peek() (Token, error) {
	if !t.hasPeeked {
		t.peeked, t.peekErr = t.scan()
		t.hasPeeked = true
	}
	return t.peeked, t.peekErr
}

func (t *tokenizer) next() (Token, error) {
	tok, err := t.peek()
	t.hasPeeked = false
	return tok, err
}

// resetLine restores block recognition after the renderer has consumed raw
// lines from the scanner (fenced code bodies).
func (t *tokenizer) resetLine() {
	t.blockAllowed = !t.inlineOnly
}

func (t *tokenizer) scan() (Token, error) {
	loc := t.sc.Location()
	b, ok := t.sc.Peek()
	if !ok {
		return Token{Kind: KindEOF, Loc: loc}, nil
	}
	if t.blockAllowed {
		if tok, ok := t.scanBlock(loc, b); ok {
			return tok, nil
		}
	}
	return t.scanInline(loc, b)
}

// scanBlock recognizes block markers at the cursor. A literal '-', '#',
// digit, or '*' that is not followed by the exact delimiter pattern is left
// for the inline scanner: the lookahead here rolls the cursor back.
func (t *tokenizer) scanBlock(loc scan.Location, b byte) (Token, bool) {
	switch b {
	case '#':
		mark := t.sc.Offset()
		level := 0
		for t.sc.Consume('#') {
			level++
		}
		if level <= 6 && t.sc.Consume(' ') {
			// The rest of the line is the heading title.
			t.blockAllowed = false
			return Token{Kind: KindHeading, Loc: loc, Level: level}, true
		}
		t.sc.Seek(mark)

	case '-':
		if t.sc.ConsumeString("- ") {
			return Token{Kind: KindBullet, Loc: loc}, true
		}

	case '>':
		t.sc.Next()
		t.sc.Consume(' ')
		return Token{Kind: KindQuote, Loc: loc}, true

	case '*':
		mark := t.sc.Offset()
		if t.sc.ConsumeString("* * *") {
			if nb, ok := t.sc.Peek(); !ok || nb == '\n' {
				return Token{Kind: KindRule, Loc: loc}, true
			}
			t.sc.Seek(mark)
		}

	case '`':
		if t.sc.ConsumeString("```") {
			info := t.sc.ConsumeLine()
			return Token{Kind: KindFence, Loc: loc, Lang: string(bytes.TrimSpace(info.Text))}, true
		}

	default:
		if b >= '0' && b <= '9' {
			mark := t.sc.Offset()
			for {
				c, ok := t.sc.Peek()
				if !ok || c < '0' || c > '9' {
					break
				}
				t.sc.Next()
			}
			if t.sc.ConsumeString(". ") {
				return Token{Kind: KindNumber, Loc: loc}, true
			}
			t.sc.Seek(mark)
		}
	}
	return Token{}, false
}

func (t *tokenizer) scanInline(loc scan.Location, b byte) (Token, error) {
	if b == '\n' {
		t.sc.Next()
		t.blockAllowed = !t.inlineOnly
		return Token{Kind: KindNewline, Loc: loc}, nil
	}
	t.blockAllowed = false

	if t.sc.Offset() == t.linkClose {
		t.sc.Seek(t.linkResume)
		t.linkClose = -1
		return Token{Kind: KindLinkClose, Loc: loc}, nil
	}

	switch b {
	case '`':
		t.sc.Next()
		start := t.sc.Offset()
		for {
			c, ok := t.sc.Peek()
			if !ok || c == '\n' {
				return Token{}, scan.Errorf(loc, "unterminated code span")
			}
			if c == '`' {
				break
			}
			t.sc.Next()
		}
		text := t.sc.Text(start, t.sc.Offset())
		t.sc.Next()
		return Token{Kind: KindCode, Loc: loc, Text: text}, nil

	case '*':
		if t.sc.ConsumeString("**") {
			return Token{Kind: KindStrong, Loc: loc}, nil
		}
		t.sc.Next()
		return Token{Kind: KindText, Loc: loc, Text: []byte("*")}, nil

	case '_':
		t.sc.Next()
		return Token{Kind: KindEmphasis, Loc: loc}, nil

	case '-':
		if t.sc.ConsumeString("--") {
			return Token{Kind: KindEmDash, Loc: loc}, nil
		}
		t.sc.Next()
		return Token{Kind: KindText, Loc: loc, Text: []byte("-")}, nil

	case '$':
		if t.sc.ConsumeString("$$") {
			return Token{Kind: KindMathDisplay, Loc: loc}, nil
		}
		t.sc.Next()
		return Token{Kind: KindMathInline, Loc: loc}, nil

	case '[':
		if t.linkClose < 0 {
			if tok, ok, err := t.scanLink(loc); err != nil {
				return Token{}, err
			} else if ok {
				return tok, nil
			}
		}
		t.sc.Next()
		return Token{Kind: KindText, Loc: loc, Text: []byte("[")}, nil

	default:
		return t.scanText(loc), nil
	}
}

// scanText consumes a run of plain text, stopping at inline syntax, the end
// of the line, or the close bracket of an open link.
func (t *tokenizer) scanText(loc scan.Location) Token {
	start := t.sc.Offset()
	for {
		if t.sc.Offset() == t.linkClose {
			break
		}
		c, ok := t.sc.Peek()
		if !ok || c == '\n' || c == '`' || c == '*' || c == '_' || c == '-' || c == '$' || c == '[' {
			break
		}
		t.sc.Next()
	}
	return Token{Kind: KindText, Loc: loc, Text: t.sc.Text(start, t.sc.Offset())}
}

// scanLink resolves a bracketed link by lookahead. Three forms are
// recognized: [text](target), [text][label], and [label] looked up in the
// link table. A bracket that resolves to none of these is plain text
// (ok=false); an explicit reference to an unknown label is an error.
func (t *tokenizer) scanLink(loc scan.Location) (tok Token, ok bool, err error) {
	rest := t.sc.Rest() // rest[0] == '['
	line := rest
	if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
		line = rest[:nl]
	}

	closeIdx := bytes.IndexByte(line[1:], ']')
	if closeIdx < 0 {
		return Token{}, false, nil
	}
	closeOff := t.sc.Offset() + 1 + closeIdx
	targetStart := closeOff + 1
	after := line[1+closeIdx+1:]

	var href string
	resume := targetStart

	switch {
	case len(after) > 0 && after[0] == '(':
		end := bytes.IndexByte(after, ')')
		if end < 0 {
			return Token{}, false, scan.Errorf(loc, "unterminated link target")
		}
		href = string(after[1:end])
		resume = targetStart + end + 1

	case len(after) > 0 && after[0] == '[':
		end := bytes.IndexByte(after[1:], ']')
		if end < 0 {
			return Token{}, false, scan.Errorf(loc, "unterminated link label")
		}
		label := string(after[1 : 1+end])
		target, found := t.links[label]
		if !found {
			return Token{}, false, scan.Errorf(loc, "undefined link label %q", label)
		}
		href = target
		resume = targetStart + end + 2

	default:
		// Shortcut form: the text is the label. Not an error when the
		// table has no entry; prose brackets stay prose.
		label := string(line[1 : 1+closeIdx])
		target, found := t.links[label]
		if !found {
			return Token{}, false, nil
		}
		href = target
	}

	t.sc.Next() // '['
	t.linkClose = closeOff
	t.linkResume = resume
	return Token{Kind: KindLinkOpen, Loc: loc, Href: href}, true, nil
}

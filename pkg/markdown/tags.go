package markdown

// BlockTag is a structural HTML element managed by the block tag stack.
type BlockTag int

const (
	P BlockTag = iota
	Li
	H1
	H2
	H3
	H4
	H5
	H6
	Ol
	Ul
	Blockquote
)

var blockNames = [...]string{
	P: "p", Li: "li",
	H1: "h1", H2: "h2", H3: "h3", H4: "h4", H5: "h5", H6: "h6",
	Ol: "ol", Ul: "ul", Blockquote: "blockquote",
}

func (b BlockTag) OpenTag() string  { return "<" + blockNames[b] + ">" }
func (b BlockTag) CloseTag() string { return "</" + blockNames[b] + ">" }

// isContainer reports whether b holds further blocks rather than inline
// content. Containers continue across lines via their markers.
func (b BlockTag) isContainer() bool {
	return b == Ol || b == Ul || b == Blockquote
}

func (b BlockTag) isHeading() bool {
	return b >= H1 && b <= H6
}

// heading returns the block tag for a heading of the given level (1-6).
func heading(level int) BlockTag {
	return H1 + BlockTag(level-1)
}

// InlineKind distinguishes the inline tag types.
type InlineKind int

const (
	Em InlineKind = iota
	Strong
	Anchor
)

// InlineTag is a character-level HTML element managed by the inline tag
// stack. Href is only meaningful for Anchor; the zero Href keeps Em and
// Strong values comparable for Toggle.
type InlineTag struct {
	Kind InlineKind
	Href string
}

func (t InlineTag) OpenTag() string {
	switch t.Kind {
	case Em:
		return "<em>"
	case Strong:
		return "<strong>"
	default:
		return `<a href="` + escapeAttr(t.Href) + `">`
	}
}

func (t InlineTag) CloseTag() string {
	switch t.Kind {
	case Em:
		return "</em>"
	case Strong:
		return "</strong>"
	default:
		return "</a>"
	}
}

// Package mathml renders a small TeX subset to MathML. The Markdown renderer
// hands it a Scanner positioned just after the opening $ or $$ and drives it
// until it reports the closing delimiter; it yields at each newline so the
// caller can strip blockquote prefixes before resuming.
//
// Scripts attach to the single immediately preceding atom: a character, a
// {...} group (rendered as one <mrow>), or a macro's result. "x^2" attaches
// to x, "(x+1)^2" attaches to the closing paren; brace the base to group it.
// Under big operators like \sum the scripts render as munder/mover instead.
package mathml

import (
	"io"
	"strings"

	"github.com/inkwell-md/inkwell/pkg/scan"
)

// Kind selects inline ($...$) or display ($$...$$) math.
type Kind int

const (
	Inline Kind = iota
	Display
)

// maxGroupDepth bounds {...} nesting so malformed input fails instead of
// recursing without limit.
const maxGroupDepth = 8

// Renderer converts one math span to MathML. It is resumable: Feed returns
// at each newline with done=false, and the pending-atom state survives the
// pause so scripts may follow on the next line.
type Renderer struct {
	kind Kind
	pend pending
}

// pending is the last completed atom, held back because a following ^ or _
// may still need to wrap it.
type pending struct {
	base  string
	bigOp bool
	sub   string
	sup   string
}

func (p *pending) empty() bool { return p.base == "" }

// markup finalizes the atom, wrapping it in a script element if any were
// attached.
func (p *pending) markup() string {
	switch {
	case p.sub != "" && p.sup != "":
		if p.bigOp {
			return "<munderover>" + p.base + p.sub + p.sup + "</munderover>"
		}
		return "<msubsup>" + p.base + p.sub + p.sup + "</msubsup>"
	case p.sub != "":
		if p.bigOp {
			return "<munder>" + p.base + p.sub + "</munder>"
		}
		return "<msub>" + p.base + p.sub + "</msub>"
	case p.sup != "":
		if p.bigOp {
			return "<mover>" + p.base + p.sup + "</mover>"
		}
		return "<msup>" + p.base + p.sup + "</msup>"
	default:
		return p.base
	}
}

// New returns a Renderer for one math span of the given kind.
func New(kind Kind) *Renderer {
	return &Renderer{kind: kind}
}

// Begin writes the opening <math> element.
func (r *Renderer) Begin(w io.Writer) {
	if r.kind == Display {
		io.WriteString(w, `<math display="block">`)
	} else {
		io.WriteString(w, "<math>")
	}
}

// End flushes the held-back atom and closes the element.
func (r *Renderer) End(w io.Writer) {
	r.flush(w)
	io.WriteString(w, "</math>")
}

// Feed consumes input until the closing delimiter ($ for inline, $$ for
// display), returning done=true, or until a newline, returning done=false so
// the caller can interleave its own per-line handling and call Feed again.
func (r *Renderer) Feed(sc *scan.Scanner, w io.Writer) (done bool, err error) {
	for {
		b, ok := sc.Peek()
		if !ok {
			return false, sc.Errorf("unterminated math: missing closing %s", r.delim())
		}
		switch b {
		case '$':
			sc.Next()
			if r.kind == Display {
				if err := sc.Expect('$'); err != nil {
					return false, err
				}
			}
			return true, nil
		case '\n':
			sc.Next()
			return false, nil
		case '\r', ' ', '\t':
			sc.Next()
		case '^', '_':
			sc.Next()
			script, err := r.scanAtom(sc, 0)
			if err != nil {
				return false, err
			}
			if err := r.attach(sc, b, script); err != nil {
				return false, err
			}
		default:
			atom, bigOp, err := r.scanAtomTagged(sc, 0)
			if err != nil {
				return false, err
			}
			r.flush(w)
			r.pend = pending{base: atom, bigOp: bigOp}
		}
	}
}

func (r *Renderer) delim() string {
	if r.kind == Display {
		return "$$"
	}
	return "$"
}

func (r *Renderer) flush(w io.Writer) {
	if !r.pend.empty() {
		io.WriteString(w, r.pend.markup())
		r.pend = pending{}
	}
}

func (r *Renderer) attach(sc *scan.Scanner, script byte, markup string) error {
	if r.pend.empty() {
		return sc.Errorf("script %q with no preceding atom", script)
	}
	if script == '^' {
		if r.pend.sup != "" {
			return sc.Errorf("double superscript")
		}
		r.pend.sup = markup
	} else {
		if r.pend.sub != "" {
			return sc.Errorf("double subscript")
		}
		r.pend.sub = markup
	}
	return nil
}

// scanAtom scans exactly one atom and returns its markup.
func (r *Renderer) scanAtom(sc *scan.Scanner, depth int) (string, error) {
	atom, _, err := r.scanAtomTagged(sc, depth)
	return atom, err
}

// scanAtomTagged scans one atom: a {...} group, a \macro, a number run, or a
// single character. bigOp is true when the atom is a big operator whose
// scripts belong under and over it.
func (r *Renderer) scanAtomTagged(sc *scan.Scanner, depth int) (atom string, bigOp bool, err error) {
	b, ok := sc.Peek()
	if !ok {
		return "", false, sc.Errorf("unterminated math: missing closing %s", r.delim())
	}
	switch {
	case b == '{':
		atom, err := r.scanGroup(sc, depth)
		return atom, false, err
	case b == '\\':
		return r.scanMacro(sc, depth)
	case b >= '0' && b <= '9':
		start := sc.Offset()
		for {
			c, ok := sc.Peek()
			if !ok || !(c >= '0' && c <= '9' || c == '.') {
				break
			}
			sc.Next()
		}
		return "<mn>" + string(sc.Text(start, sc.Offset())) + "</mn>", false, nil
	case b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z':
		sc.Next()
		return "<mi>" + string(b) + "</mi>", false, nil
	case strings.IndexByte("+-=()[]|,.!/:;'", b) >= 0:
		sc.Next()
		return "<mo>" + string(b) + "</mo>", false, nil
	case b == '<':
		sc.Next()
		return "<mo>&lt;</mo>", false, nil
	case b == '>':
		sc.Next()
		return "<mo>&gt;</mo>", false, nil
	case b == '&':
		sc.Next()
		return "<mo>&amp;</mo>", false, nil
	default:
		return "", false, sc.Errorf("unexpected character %q in math", b)
	}
}

// scanGroup scans a braced {...} group into a single <mrow> atom. Newlines
// inside groups are treated as plain whitespace.
func (r *Renderer) scanGroup(sc *scan.Scanner, depth int) (string, error) {
	if depth >= maxGroupDepth {
		return "", sc.Errorf("math groups nested deeper than %d", maxGroupDepth)
	}
	if err := sc.Expect('{'); err != nil {
		return "", err
	}

	var group Renderer
	group.kind = r.kind
	var buf strings.Builder
	for {
		b, ok := sc.Peek()
		if !ok {
			return "", sc.Errorf("unterminated group: missing closing }")
		}
		switch b {
		case '}':
			sc.Next()
			group.flush(&buf)
			return "<mrow>" + buf.String() + "</mrow>", nil
		case ' ', '\t', '\n', '\r':
			sc.Next()
		case '^', '_':
			sc.Next()
			script, err := group.scanAtom(sc, depth+1)
			if err != nil {
				return "", err
			}
			if err := group.attach(sc, b, script); err != nil {
				return "", err
			}
		default:
			atom, bigOp, err := group.scanAtomTagged(sc, depth+1)
			if err != nil {
				return "", err
			}
			group.flush(&buf)
			group.pend = pending{base: atom, bigOp: bigOp}
		}
	}
}

// scanMacro resolves a backslash macro against the static table.
func (r *Renderer) scanMacro(sc *scan.Scanner, depth int) (atom string, bigOp bool, err error) {
	loc := sc.Location()
	sc.Next() // backslash
	name := r.scanMacroName(sc)
	if name == "" {
		return "", false, scan.Errorf(loc, "incomplete macro")
	}

	m, ok := macros[name]
	if !ok {
		return "", false, scan.Errorf(loc, "unknown macro \\%s", name)
	}

	switch m.kind {
	case macroSimple:
		return m.markup, false, nil

	case macroBigOp:
		return m.markup, true, nil

	case macroFrac:
		num, err := r.scanGroup(sc, depth)
		if err != nil {
			return "", false, err
		}
		den, err := r.scanGroup(sc, depth)
		if err != nil {
			return "", false, err
		}
		return "<mfrac>" + num + den + "</mfrac>", false, nil

	case macroSqrt:
		arg, err := r.scanGroup(sc, depth)
		if err != nil {
			return "", false, err
		}
		return "<msqrt>" + arg + "</msqrt>", false, nil

	case macroAccent:
		base, err := r.scanAtom(sc, depth)
		if err != nil {
			return "", false, err
		}
		return `<mover accent="true">` + base + "<mo>" + m.accent + "</mo></mover>", false, nil

	case macroFont:
		if err := sc.Expect('{'); err != nil {
			return "", false, err
		}
		var buf strings.Builder
		for {
			b, ok := sc.Next()
			if !ok {
				return "", false, sc.Errorf("unterminated group: missing closing }")
			}
			if b == '}' {
				break
			}
			buf.WriteString(`<mi mathvariant="` + m.variant + `">` + string(b) + "</mi>")
		}
		return "<mrow>" + buf.String() + "</mrow>", false, nil

	case macroText:
		if err := sc.Expect('{'); err != nil {
			return "", false, err
		}
		span, ok := sc.ConsumeUntil('}')
		if !ok {
			return "", false, sc.Errorf("unterminated group: missing closing }")
		}
		return "<mtext>" + escapeText(span.Text) + "</mtext>", false, nil
	}

	return "", false, scan.Errorf(loc, "unknown macro \\%s", name)
}

// scanMacroName reads a run of letters, or a single non-letter for escapes
// like \, and \{.
func (r *Renderer) scanMacroName(sc *scan.Scanner) string {
	b, ok := sc.Peek()
	if !ok {
		return ""
	}
	if !(b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z') {
		sc.Next()
		return string(b)
	}
	var name strings.Builder
	for {
		c, ok := sc.Peek()
		if !ok || !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			break
		}
		sc.Next()
		name.WriteByte(c)
	}
	return name.String()
}

func escapeText(text []byte) string {
	s := string(text)
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

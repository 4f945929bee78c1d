// Package markdown renders a constrained Markdown dialect to balanced HTML.
// It drives two bounded tag stacks, one for block structure and one for
// inline markup, so every tag it opens is provably closed, and delegates
// fenced code to the highlight package and $-delimited math to mathml,
// sharing one scanner across all three.
package markdown

import (
	"io"
	"maps"

	"github.com/inkwell-md/inkwell/pkg/highlight"
	"github.com/inkwell-md/inkwell/pkg/mathml"
	"github.com/inkwell-md/inkwell/pkg/scan"
	"github.com/inkwell-md/inkwell/pkg/tagstack"
)

// Options controls the two reduced rendering modes.
type Options struct {
	// Inline renders only inline constructs, never opening block tags.
	// Used for titles and descriptions.
	Inline bool

	// FirstBlockOnly stops after the first top-level block closes, still
	// balancing every emitted tag. Used for excerpts.
	FirstBlockOnly bool
}

// Render converts source to HTML on w. name tags error locations. links
// resolves reference-style link labels, in addition to any trailing
// "[label]: target" definitions stripped from source itself. On error the
// output written so far is abandoned by the caller; no partial recovery is
// attempted within a document.
func Render(name string, source []byte, w io.Writer, links Links, opts Options) error {
	body, defs := ExtractLinkDefs(source)
	if len(links) > 0 {
		maps.Copy(defs, links)
	}

	sc := scan.New(name, body)
	r := &renderer{
		sc:   sc,
		t:    newTokenizer(sc, defs, opts.Inline),
		w:    &htmlWriter{w: w},
		opts: opts,
	}
	return r.run()
}

type renderer struct {
	sc   *scan.Scanner
	t    *tokenizer
	w    *htmlWriter
	opts Options

	blocks  tagstack.Stack[BlockTag]
	inlines tagstack.Stack[InlineTag]

	// emitted flips once any block has been opened, so FirstBlockOnly can
	// tell "first block closed" from "nothing rendered yet".
	emitted bool
}

func (r *renderer) run() error {
	for {
		tok, err := r.t.peek()
		if err != nil {
			return err
		}
		if tok.Kind == KindEOF {
			break
		}
		if err := r.renderLine(); err != nil {
			return err
		}
		if r.opts.FirstBlockOnly && r.emitted && r.blocks.Len() == 0 {
			break
		}
	}

	// Unwind everything, even on early stop.
	r.inlines.Truncate(r.w, 0)
	r.closeBlocks(0)
	return nil
}

// renderLine processes one logical line: match continuations of open
// containers, close what did not continue, then consume tokens to the
// newline.
func (r *renderer) renderLine() error {
	if !r.opts.Inline {
		if err := r.lineStart(); err != nil {
			return err
		}
	}

	for {
		tok, err := r.t.next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case KindEOF:
			return nil
		case KindNewline:
			r.endLine()
			return nil
		case KindQuote:
			if err := r.pushBlock(Blockquote, tok.Loc); err != nil {
				return err
			}
		case KindBullet:
			if err := r.pushBlock(Ul, tok.Loc); err != nil {
				return err
			}
		case KindNumber:
			if err := r.pushBlock(Ol, tok.Loc); err != nil {
				return err
			}
		case KindHeading:
			if err := r.pushBlock(heading(tok.Level), tok.Loc); err != nil {
				return err
			}
		case KindRule:
			r.w.ensureNewline()
			io.WriteString(r.w, "<hr>")
			r.emitted = true
		case KindFence:
			return r.renderFence(tok)
		default:
			if err := r.renderInline(tok); err != nil {
				return err
			}
		}
	}
}

// lineStart matches open containers against this line's continuation
// markers and closes the levels that did not continue. A paragraph on top of
// the matched containers survives only when the line begins with inline
// content; list items and headings never continue across lines.
func (r *renderer) lineStart() error {
	matched := 0
	for matched < r.blocks.Len() && r.blocks.At(matched).isContainer() {
		tok, err := r.t.peek()
		if err != nil {
			return err
		}
		if tok.Kind != markerFor(r.blocks.At(matched)) {
			break
		}
		r.t.next()
		matched++
	}

	keep := matched
	continued := false
	if keep == r.blocks.Len()-1 && r.blocks.At(keep) == P {
		tok, err := r.t.peek()
		if err != nil {
			return err
		}
		if tok.Kind.IsInline() {
			keep++
			continued = true
		}
	}

	r.closeBlocks(keep)
	if continued {
		io.WriteString(r.w, "\n")
	}
	return nil
}

// markerFor returns the token kind that continues the given container.
func markerFor(tag BlockTag) Kind {
	switch tag {
	case Ul:
		return KindBullet
	case Ol:
		return KindNumber
	default:
		return KindQuote
	}
}

// endLine runs at every newline: inline markup never survives a line break,
// and headings close with their line.
func (r *renderer) endLine() {
	r.inlines.Truncate(r.w, 0)
	if top, ok := r.blocks.Top(); ok && top.isHeading() {
		r.blocks.Pop(r.w)
	}
}

func (r *renderer) renderInline(tok Token) error {
	if !r.opts.Inline {
		if err := r.ensureBlock(tok.Loc); err != nil {
			return err
		}
	}

	switch tok.Kind {
	case KindText:
		writeEscaped(r.w, tok.Text)
	case KindCode:
		io.WriteString(r.w, "<code>")
		writeEscaped(r.w, tok.Text)
		io.WriteString(r.w, "</code>")
	case KindEmDash:
		io.WriteString(r.w, "—")
	case KindEmphasis:
		return r.toggle(InlineTag{Kind: Em}, tok.Loc)
	case KindStrong:
		return r.toggle(InlineTag{Kind: Strong}, tok.Loc)
	case KindLinkOpen:
		if err := r.inlines.Push(r.w, InlineTag{Kind: Anchor, Href: tok.Href}); err != nil {
			return scan.Errorf(tok.Loc, "%s", err)
		}
	case KindLinkClose:
		// Close the anchor, force-closing any emphasis left open inside
		// the link text so the output stays nested.
		for i := r.inlines.Len() - 1; i >= 0; i-- {
			if r.inlines.At(i).Kind == Anchor {
				r.inlines.Truncate(r.w, i)
				break
			}
		}
	case KindMathInline:
		return r.renderMath(mathml.Inline)
	case KindMathDisplay:
		return r.renderMath(mathml.Display)
	}
	return nil
}

func (r *renderer) toggle(tag InlineTag, loc scan.Location) error {
	if err := r.inlines.Toggle(r.w, tag); err != nil {
		return scan.Errorf(loc, "%s", err)
	}
	return nil
}

// ensureBlock opens the implicit block for inline content appearing where a
// container expects a block child: li inside lists, p everywhere else. The
// innermost open container decides.
func (r *renderer) ensureBlock(loc scan.Location) error {
	top, ok := r.blocks.Top()
	if ok && !top.isContainer() {
		return nil
	}
	tag := P
	if ok && (top == Ul || top == Ol) {
		tag = Li
	}
	return r.pushBlock(tag, loc)
}

func (r *renderer) pushBlock(tag BlockTag, loc scan.Location) error {
	r.w.ensureNewline()
	if err := r.blocks.Push(r.w, tag); err != nil {
		return scan.Errorf(loc, "%s", err)
	}
	r.emitted = true
	return nil
}

// closeBlocks truncates the block stack to depth n, separating block
// boundaries with newlines.
func (r *renderer) closeBlocks(n int) {
	for r.blocks.Len() > n {
		if top, _ := r.blocks.Top(); top.isContainer() {
			r.w.ensureNewline()
		}
		r.blocks.Pop(r.w)
	}
}

// renderFence hands the scanner to a Highlighter one line at a time until
// the closing fence, stripping blockquote prefixes between lines.
func (r *renderer) renderFence(tok Token) error {
	r.w.ensureNewline()
	h := highlight.New(tok.Lang)
	h.Begin(r.w)
	for {
		if r.sc.EOF() {
			return scan.Errorf(tok.Loc, "unterminated code fence")
		}
		r.consumeLinePrefix()
		line := r.sc.ConsumeLine()
		if isClosingFence(line.Text) {
			break
		}
		h.RenderLine(r.w, line.Text)
	}
	h.End(r.w)
	r.emitted = true
	r.t.resetLine()
	return nil
}

func isClosingFence(line []byte) bool {
	if len(line) < 3 {
		return false
	}
	for i, b := range line {
		if i < 3 && b != '`' || i >= 3 && b != ' ' {
			return false
		}
	}
	return true
}

// renderMath drives a math renderer until the closing delimiter, feeding it
// the shared scanner and consuming container prefixes at each newline so
// display math works inside blockquotes.
func (r *renderer) renderMath(kind mathml.Kind) error {
	m := mathml.New(kind)
	m.Begin(r.w)
	for {
		done, err := m.Feed(r.sc, r.w)
		if err != nil {
			return err
		}
		if done {
			break
		}
		r.consumeLinePrefix()
	}
	m.End(r.w)
	return nil
}

// consumeLinePrefix consumes the continuation markers of open blockquotes at
// the start of a raw line read outside the tokenizer.
func (r *renderer) consumeLinePrefix() {
	for i := 0; i < r.blocks.Len(); i++ {
		if r.blocks.At(i) == Blockquote {
			if !r.sc.ConsumeString("> ") {
				r.sc.Consume('>')
			}
		}
	}
}

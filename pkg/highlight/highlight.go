// Package highlight renders fenced code blocks as escaped HTML with
// classified <span> wrapping. A small fixed set of languages is highlighted
// by hand-written keyword tables driven one source line at a time; anything
// else falls back to a chroma lexer, with go-enry guessing the language when
// the fence has no info string.
//
// Span classes: kw (keyword), cn (constant), st (string), co (comment).
// Plain text gets no span at all.
package highlight

import (
	"bytes"
	"io"
)

// Span classes emitted by the highlighter.
const (
	ClassKeyword  = "kw"
	ClassConstant = "cn"
	ClassString   = "st"
	ClassComment  = "co"
)

type mode int

const (
	modeNormal mode = iota
	modeString
	modeLineComment
)

// Highlighter renders one fenced code block. It is driven a line at a time so
// the Markdown renderer can keep scanning for the closing fence; the struct
// carries all state needed to resume at the next line.
type Highlighter struct {
	lang *Language
	mode mode

	// class is the currently open span class, "" when no span is open.
	// Adjacent tokens of the same class share one span.
	class string

	// space buffers whitespace until the class of the following token is
	// known, so spans swallow interior whitespace but never trailing.
	space []byte

	// quote is the delimiter of the string being scanned in modeString.
	quote byte

	// buffered holds the raw block for the fallback paths, which need the
	// whole text at once. fallbackLang is the requested language; empty
	// means detect with enry at End.
	buffered     bytes.Buffer
	fallback     bool
	fallbackLang string
}

// New returns a Highlighter for the given fence info string. An empty or
// unknown language selects the fallback path.
func New(language string) *Highlighter {
	h := &Highlighter{}
	if lang, ok := Lookup(language); ok {
		h.lang = lang
	} else {
		h.fallback = true
		h.fallbackLang = language
	}
	return h
}

// Begin writes the opening markup and resets state.
func (h *Highlighter) Begin(w io.Writer) {
	h.mode = modeNormal
	h.class = ""
	h.space = h.space[:0]
	io.WriteString(w, "<pre><code>")
}

// End flushes any open span and writes the closing markup. Callers must
// always call End: an open class span is only closed here or at the next
// class change.
func (h *Highlighter) End(w io.Writer) {
	if h.fallback {
		h.renderFallback(w)
	}
	h.flushClass(w)
	h.flushSpace(w)
	io.WriteString(w, "</code></pre>")
}

// RenderLine highlights one source line (without its newline) and writes the
// escaped HTML followed by a newline. Strings and line comments force-close
// at end of line: they continue to, but never past, the newline.
func (h *Highlighter) RenderLine(w io.Writer, line []byte) {
	if h.fallback {
		h.buffered.Write(line)
		h.buffered.WriteByte('\n')
		return
	}

	for i := 0; i < len(line); {
		b := line[i]
		switch {
		case h.mode == modeLineComment:
			h.write(w, ClassComment, line[i:])
			i = len(line)

		case h.mode == modeString:
			j := i
			closed := false
			for j < len(line) {
				if line[j] == '\\' && j+1 < len(line) {
					j += 2
					continue
				}
				if line[j] == h.quote {
					j++
					closed = true
					break
				}
				j++
			}
			h.write(w, ClassString, line[i:j])
			if closed {
				h.mode = modeNormal
			}
			i = j

		case b == ' ' || b == '\t':
			h.space = append(h.space, b)
			i++

		case b == '"' || b == '\'':
			h.mode = modeString
			h.quote = b
			h.write(w, ClassString, line[i:i+1])
			i++

		case h.lang.LineComment != "" && bytes.HasPrefix(line[i:], []byte(h.lang.LineComment)):
			h.mode = modeLineComment
			h.write(w, ClassComment, line[i:])
			i = len(line)

		case b >= '0' && b <= '9':
			j := i
			for j < len(line) && (line[j] >= '0' && line[j] <= '9' || line[j] == '.' || line[j] == '_') {
				j++
			}
			h.write(w, ClassConstant, line[i:j])
			i = j

		case h.lang.isIdent(b):
			j := i
			for j < len(line) && h.lang.isIdent(line[j]) {
				j++
			}
			class := ""
			if h.lang.Keywords[string(line[i:j])] {
				class = ClassKeyword
			}
			h.write(w, class, line[i:j])
			i = j

		default:
			h.write(w, "", line[i:i+1])
			i++
		}
	}

	// Strings and line comments never span lines: reaching the newline
	// force-closes their span. Other classes may merge across it.
	h.mode = modeNormal
	if h.class == ClassString || h.class == ClassComment {
		h.flushClass(w)
	}
	h.space = append(h.space, '\n')
}

// write emits text under the given class, merging into the open span when the
// class matches and flushing it when it does not. Escaping happens here, so
// entities land inside the current span rather than breaking it.
func (h *Highlighter) write(w io.Writer, class string, text []byte) {
	if class != h.class {
		h.flushClass(w)
		h.flushSpace(w)
		if class != "" {
			io.WriteString(w, `<span class="`+class+`">`)
			h.class = class
		}
	} else {
		h.flushSpace(w)
	}
	writeEscaped(w, text)
}

func (h *Highlighter) flushClass(w io.Writer) {
	if h.class != "" {
		io.WriteString(w, "</span>")
		h.class = ""
	}
}

func (h *Highlighter) flushSpace(w io.Writer) {
	if len(h.space) > 0 {
		w.Write(h.space)
		h.space = h.space[:0]
	}
}

// writeEscaped writes text with <, > and & replaced by entities, exactly one
// substitution per byte.
func writeEscaped(w io.Writer, text []byte) {
	start := 0
	for i, b := range text {
		var ent string
		switch b {
		case '<':
			ent = "&lt;"
		case '>':
			ent = "&gt;"
		case '&':
			ent = "&amp;"
		default:
			continue
		}
		w.Write(text[start:i])
		io.WriteString(w, ent)
		start = i + 1
	}
	w.Write(text[start:])
}

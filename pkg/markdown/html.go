package markdown

import "io"

// htmlWriter tracks the last emitted byte so block tags can be separated by
// single newlines without ever producing doubled ones.
type htmlWriter struct {
	w    io.Writer
	last byte
}

func (hw *htmlWriter) Write(p []byte) (int, error) {
	if len(p) > 0 {
		hw.last = p[len(p)-1]
	}
	return hw.w.Write(p)
}

// ensureNewline emits a newline unless the output is empty or already ends
// with one.
func (hw *htmlWriter) ensureNewline() {
	if hw.last != 0 && hw.last != '\n' {
		io.WriteString(hw, "\n")
	}
}

// writeEscaped writes text with <, > and & replaced by entities.
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

// escapeAttr escapes a link target for use inside a double-quoted attribute.
func escapeAttr(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			out = append(out, "&amp;"...)
		case '"':
			out = append(out, "&quot;"...)
		case '<':
			out = append(out, "&lt;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

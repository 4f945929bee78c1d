package highlight

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// renderFallback highlights the buffered block with a chroma lexer, mapping
// chroma token categories onto the same span classes the table-driven path
// uses. When the fence had no info string the language is detected first.
// If no lexer matches, the block is emitted as escaped plain text.
func (h *Highlighter) renderFallback(w io.Writer) {
	code := h.buffered.String()
	lang := h.fallbackLang
	if lang == "" {
		lang = Detect(h.buffered.Bytes())
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		writeEscaped(w, h.buffered.Bytes())
		return
	}
	lexer = chroma.Coalesce(lexer)

	iter, err := lexer.Tokenise(nil, code)
	if err != nil {
		writeEscaped(w, h.buffered.Bytes())
		return
	}

	var prev, tok, next chroma.Token
	next = iter()
	for next != chroma.EOF {
		prev, tok, next = tok, next, iter()
		if strings.TrimSpace(tok.Value) == "" {
			h.space = append(h.space, tok.Value...)
			continue
		}
		h.write(w, classify(prev, tok, next), []byte(tok.Value))
	}
}

// classify maps a chroma token onto a span class, "" for plain.
func classify(_, tok, _ chroma.Token) string {
	switch tok.Type {
	case chroma.KeywordPseudo, chroma.NameConstant:
		return ClassConstant
	}
	switch {
	case tok.Type.InCategory(chroma.Comment):
		return ClassComment
	case tok.Type.InCategory(chroma.Keyword):
		return ClassKeyword
	case tok.Type.InCategory(chroma.LiteralString):
		return ClassString
	case tok.Type.InCategory(chroma.Literal):
		return ClassConstant
	}
	return ""
}

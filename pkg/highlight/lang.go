package highlight

// Language describes one entry in the fixed set of built-in languages.
// The tables are deliberately small: keywords, a line-comment opener, and the
// extra bytes the language allows inside identifiers.
type Language struct {
	// Name is the canonical fence info-string name.
	Name string

	// Keywords is the set of identifiers highlighted as keywords.
	Keywords map[string]bool

	// LineComment is the sequence that starts a comment running to end of line.
	LineComment string

	// IdentExtra lists bytes beyond [A-Za-z0-9_] that may appear inside
	// identifiers, e.g. '-' in Scheme.
	IdentExtra string
}

// isIdent reports whether b can appear inside an identifier of this language.
func (l *Language) isIdent(b byte) bool {
	if b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_' {
		return true
	}
	for i := 0; i < len(l.IdentExtra); i++ {
		if l.IdentExtra[i] == b {
			return true
		}
	}
	return false
}

// Lookup returns the built-in language table for name, if there is one.
// Languages outside this set go through the chroma fallback instead.
func Lookup(name string) (*Language, bool) {
	lang, ok := languages[name]
	return lang, ok
}

var languages = map[string]*Language{
	"c": {
		Name:        "c",
		LineComment: "//",
		Keywords: keywords(
			"auto", "break", "case", "char", "const", "continue", "default",
			"do", "double", "else", "enum", "extern", "float", "for", "goto",
			"if", "int", "long", "register", "return", "short", "signed",
			"sizeof", "static", "struct", "switch", "typedef", "union",
			"unsigned", "void", "volatile", "while",
		),
	},
	"go": {
		Name:        "go",
		LineComment: "//",
		Keywords: keywords(
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "false", "for", "func", "go", "goto", "if",
			"import", "interface", "map", "nil", "package", "range", "return",
			"select", "struct", "switch", "true", "type", "var",
		),
	},
	"python": {
		Name:        "python",
		LineComment: "#",
		Keywords: keywords(
			"False", "None", "True", "and", "as", "assert", "async", "await",
			"break", "class", "continue", "def", "del", "elif", "else",
			"except", "finally", "for", "from", "global", "if", "import",
			"in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
			"return", "try", "while", "with", "yield",
		),
	},
	"ruby": {
		Name:        "ruby",
		LineComment: "#",
		IdentExtra:  "?!",
		Keywords: keywords(
			"alias", "and", "begin", "break", "case", "class", "def", "do",
			"else", "elsif", "end", "ensure", "false", "for", "if", "in",
			"module", "next", "nil", "not", "or", "redo", "rescue", "retry",
			"return", "self", "super", "then", "true", "undef", "unless",
			"until", "when", "while", "yield",
		),
	},
	"scheme": {
		Name:        "scheme",
		LineComment: ";",
		IdentExtra:  "-!?*+<>=/",
		Keywords: keywords(
			"and", "begin", "case", "cond", "define", "delay", "do", "else",
			"if", "lambda", "let", "let*", "letrec", "or", "quasiquote",
			"quote", "set!", "unless", "unquote", "when",
		),
	},
}

func keywords(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

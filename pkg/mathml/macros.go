package mathml

// macroKind selects how a macro consumes input after its name.
type macroKind int

const (
	// macroSimple emits fixed markup and consumes nothing.
	macroSimple macroKind = iota

	// macroBigOp is like macroSimple but scripts render under/over the
	// operator instead of as sub/superscripts.
	macroBigOp

	// macroFrac consumes two {...} groups (numerator, denominator).
	macroFrac

	// macroSqrt consumes one {...} group.
	macroSqrt

	// macroAccent consumes one atom and stacks an accent over it.
	macroAccent

	// macroFont consumes one {...} group and emits each letter as an <mi>
	// with a mathvariant attribute.
	macroFont

	// macroText consumes one {...} group and emits it verbatim as <mtext>.
	macroText
)

// macro is one entry in the table. Which fields are meaningful depends on
// kind: markup for simple/bigop, accent for accents, variant for fonts.
type macro struct {
	kind    macroKind
	markup  string
	accent  string
	variant string
}

// macros maps backslash-names to their MathML productions. The table is
// built once at package init and never mutated; adding a macro means adding
// a line here, not runtime registration.
var macros = map[string]macro{
	// Greek letters.
	"alpha":   mi("α"),
	"beta":    mi("β"),
	"gamma":   mi("γ"),
	"delta":   mi("δ"),
	"epsilon": mi("ε"),
	"zeta":    mi("ζ"),
	"eta":     mi("η"),
	"theta":   mi("θ"),
	"iota":    mi("ι"),
	"kappa":   mi("κ"),
	"lambda":  mi("λ"),
	"mu":      mi("μ"),
	"nu":      mi("ν"),
	"xi":      mi("ξ"),
	"pi":      mi("π"),
	"rho":     mi("ρ"),
	"sigma":   mi("σ"),
	"tau":     mi("τ"),
	"upsilon": mi("υ"),
	"phi":     mi("φ"),
	"chi":     mi("χ"),
	"psi":     mi("ψ"),
	"omega":   mi("ω"),
	"Gamma":   mi("Γ"),
	"Delta":   mi("Δ"),
	"Theta":   mi("Θ"),
	"Lambda":  mi("Λ"),
	"Xi":      mi("Ξ"),
	"Pi":      mi("Π"),
	"Sigma":   mi("Σ"),
	"Phi":     mi("Φ"),
	"Psi":     mi("Ψ"),
	"Omega":   mi("Ω"),

	// Operators and relations.
	"pm":     mo("±"),
	"mp":     mo("∓"),
	"times":  mo("×"),
	"div":    mo("÷"),
	"cdot":   mo("⋅"),
	"circ":   mo("∘"),
	"le":     mo("≤"),
	"leq":    mo("≤"),
	"ge":     mo("≥"),
	"geq":    mo("≥"),
	"ne":     mo("≠"),
	"neq":    mo("≠"),
	"approx": mo("≈"),
	"equiv":  mo("≡"),
	"to":     mo("→"),
	"mapsto": mo("↦"),
	"in":     mo("∈"),
	"notin":  mo("∉"),
	"subset": mo("⊂"),
	"cup":    mo("∪"),
	"cap":    mo("∩"),
	"forall": mo("∀"),
	"exists": mo("∃"),
	"neg":    mo("¬"),
	"land":   mo("∧"),
	"lor":    mo("∨"),
	"dots":   mo("…"),
	"cdots":  mo("⋯"),
	"infty":  mi("∞"),
	"partial": mi("∂"),
	"nabla":  mi("∇"),
	"ell":    mi("ℓ"),

	// Big operators: scripts go under/over.
	"sum":    {kind: macroBigOp, markup: "<mo>∑</mo>"},
	"prod":   {kind: macroBigOp, markup: "<mo>∏</mo>"},
	"int":    {kind: macroBigOp, markup: "<mo>∫</mo>"},
	"lim":    {kind: macroBigOp, markup: "<mo>lim</mo>"},
	"bigcup": {kind: macroBigOp, markup: "<mo>⋃</mo>"},
	"bigcap": {kind: macroBigOp, markup: "<mo>⋂</mo>"},

	// Structures.
	"frac": {kind: macroFrac},
	"sqrt": {kind: macroSqrt},

	// Accents.
	"hat":   {kind: macroAccent, accent: "ˆ"},
	"bar":   {kind: macroAccent, accent: "¯"},
	"vec":   {kind: macroAccent, accent: "→"},
	"tilde": {kind: macroAccent, accent: "˜"},
	"dot":   {kind: macroAccent, accent: "˙"},

	// Font variants.
	"mathbb": {kind: macroFont, variant: "double-struck"},
	"mathbf": {kind: macroFont, variant: "bold"},
	"mathrm": {kind: macroFont, variant: "normal"},
	"mathcal": {kind: macroFont, variant: "script"},

	// Text.
	"text": {kind: macroText},

	// Spacing.
	"quad":  {kind: macroSimple, markup: `<mspace width="1em"></mspace>`},
	"qquad": {kind: macroSimple, markup: `<mspace width="2em"></mspace>`},
	",":     {kind: macroSimple, markup: `<mspace width="0.167em"></mspace>`},
	";":     {kind: macroSimple, markup: `<mspace width="0.278em"></mspace>`},

	// Named delimiters and escapes.
	"{":          mo("{"),
	"}":          mo("}"),
	"langle":     mo("⟨"),
	"rangle":     mo("⟩"),
	"lfloor":     mo("⌊"),
	"rfloor":     mo("⌋"),
	"lceil":      mo("⌈"),
	"rceil":      mo("⌉"),
	"backslash":  mo("\\"),
}

func mi(s string) macro { return macro{kind: macroSimple, markup: "<mi>" + s + "</mi>"} }
func mo(s string) macro { return macro{kind: macroSimple, markup: "<mo>" + s + "</mo>"} }

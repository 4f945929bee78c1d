package highlight_test

import (
	"strings"
	"testing"

	"github.com/inkwell-md/inkwell/pkg/highlight"
)

// render drives a Highlighter over the given source lines the way the
// Markdown renderer does: Begin, one RenderLine per line, End.
func render(lang string, source string) string {
	var buf strings.Builder
	h := highlight.New(lang)
	h.Begin(&buf)
	for _, line := range strings.Split(source, "\n") {
		h.RenderLine(&buf, []byte(line))
	}
	h.End(&buf)
	return buf.String()
}

func TestRuby(t *testing.T) {
	t.Parallel()

	got := render("ruby", "# Comment\ndef hello()\nend")
	want := "<pre><code>" +
		`<span class="co"># Comment</span>` + "\n" +
		`<span class="kw">def</span> hello()` + "\n" +
		`<span class="kw">end</span>` + "\n" +
		"</code></pre>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestConstants(t *testing.T) {
	t.Parallel()

	got := render("go", "x := 3.14_15")
	want := "<pre><code>" +
		`x := <span class="cn">3.14_15</span>` + "\n" +
		"</code></pre>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestStringWithEscape(t *testing.T) {
	t.Parallel()

	got := render("c", `s = "a\"b";`)
	want := "<pre><code>" +
		`s = <span class="st">"a\"b"</span>;` + "\n" +
		"</code></pre>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

// An unterminated string must force-close at the newline rather than
// spanning into the next line.
func TestStringForceClosedAtNewline(t *testing.T) {
	t.Parallel()

	got := render("c", "\"abc\ndef\"")
	want := "<pre><code>" +
		`<span class="st">"abc</span>` + "\n" +
		`def<span class="st">"</span>` + "\n" +
		"</code></pre>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestEntitiesEscapedOnce(t *testing.T) {
	t.Parallel()

	got := render("c", "a<b && c>d")
	if !strings.Contains(got, "a&lt;b &amp;&amp; c&gt;d") {
		t.Errorf("entities not escaped exactly once: %q", got)
	}
	if strings.Contains(got, "&amp;lt;") || strings.Contains(got, "&amp;amp;") {
		t.Errorf("double-escaped entities: %q", got)
	}
}

// The entity must be emitted inside the open span, not break it.
func TestEscapeInsideSpan(t *testing.T) {
	t.Parallel()

	got := render("ruby", "# a < b")
	want := `<span class="co"># a &lt; b</span>`
	if !strings.Contains(got, want) {
		t.Errorf("got %q, want it to contain %q", got, want)
	}
}

func TestAdjacentSameClassMerged(t *testing.T) {
	t.Parallel()

	got := render("go", "if true")
	// "if" and "true" are both keywords: one span, whitespace inside it.
	want := `<span class="kw">if true</span>`
	if !strings.Contains(got, want) {
		t.Errorf("got %q, want merged span %q", got, want)
	}
}

func TestSchemeIdentifiers(t *testing.T) {
	t.Parallel()

	got := render("scheme", "(define list-length 0) ; tail")
	if !strings.Contains(got, `<span class="kw">define</span>`) {
		t.Errorf("define not a keyword: %q", got)
	}
	if strings.Contains(got, `>list-length<`) && strings.Contains(got, `class="kw">list`) {
		t.Errorf("hyphenated identifier split: %q", got)
	}
	if !strings.Contains(got, `<span class="co">; tail</span>`) {
		t.Errorf("semicolon comment not classified: %q", got)
	}
}

func TestUnknownLanguageFallsBackToPlain(t *testing.T) {
	t.Parallel()

	// No chroma lexer for this name, so the block comes out escaped only.
	got := render("nosuchlanguage", "<tag> & co")
	want := "<pre><code>&lt;tag&gt; &amp; co\n</code></pre>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"c", "go", "python", "ruby", "scheme"} {
		if _, ok := highlight.Lookup(name); !ok {
			t.Errorf("Lookup(%q) missing", name)
		}
	}
	if _, ok := highlight.Lookup("cobol"); ok {
		t.Error("Lookup(cobol) unexpectedly present")
	}
}

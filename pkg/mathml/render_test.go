package mathml_test

import (
	"strings"
	"testing"

	"github.com/inkwell-md/inkwell/pkg/mathml"
	"github.com/inkwell-md/inkwell/pkg/scan"
)

// renderInline drives a Renderer over source (positioned after the opening
// delimiter) until it reports the closing one.
func renderMath(t *testing.T, kind mathml.Kind, source string) string {
	t.Helper()

	var buf strings.Builder
	sc := scan.New("test.md", []byte(source))
	r := mathml.New(kind)
	r.Begin(&buf)
	for {
		done, err := r.Feed(sc, &buf)
		if err != nil {
			t.Fatalf("Feed: %v", err)
		}
		if done {
			break
		}
	}
	r.End(&buf)
	return buf.String()
}

func TestSuperscript(t *testing.T) {
	t.Parallel()

	got := renderMath(t, mathml.Inline, "x^2$")
	want := "<math><msup><mi>x</mi><mn>2</mn></msup></math>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestSubscript(t *testing.T) {
	t.Parallel()

	got := renderMath(t, mathml.Inline, "x_i$")
	want := "<math><msub><mi>x</mi><mi>i</mi></msub></math>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestSubSup(t *testing.T) {
	t.Parallel()

	got := renderMath(t, mathml.Inline, "x_i^2$")
	want := "<math><msubsup><mi>x</mi><mi>i</mi><mn>2</mn></msubsup></math>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestQuadraticFormula(t *testing.T) {
	t.Parallel()

	got := renderMath(t, mathml.Inline, `x = \frac{-b \pm \sqrt{b^2 - 4ac}}{2a}$`)
	want := "<math><mi>x</mi><mo>=</mo><mfrac>" +
		"<mrow><mo>-</mo><mi>b</mi><mo>±</mo>" +
		"<msqrt><mrow><msup><mi>b</mi><mn>2</mn></msup><mo>-</mo><mn>4</mn><mi>a</mi><mi>c</mi></mrow></msqrt>" +
		"</mrow>" +
		"<mrow><mn>2</mn><mi>a</mi></mrow>" +
		"</mfrac></math>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestBigOperatorUnderOver(t *testing.T) {
	t.Parallel()

	got := renderMath(t, mathml.Inline, `\sum_{i=1}^{n} i$`)
	want := "<math><munderover><mo>∑</mo>" +
		"<mrow><mi>i</mi><mo>=</mo><mn>1</mn></mrow>" +
		"<mrow><mi>n</mi></mrow>" +
		"</munderover><mi>i</mi></math>"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestDisplayMath(t *testing.T) {
	t.Parallel()

	got := renderMath(t, mathml.Display, `a$$`)
	want := `<math display="block"><mi>a</mi></math>`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestFontVariant(t *testing.T) {
	t.Parallel()

	got := renderMath(t, mathml.Inline, `\mathbb{R}$`)
	want := `<math><mrow><mi mathvariant="double-struck">R</mi></mrow></math>`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

// Feed yields at newlines so callers can strip blockquote prefixes, and the
// pending-atom state survives the pause.
func TestFeedYieldsAtNewline(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	sc := scan.New("test.md", []byte("a\nb$"))
	r := mathml.New(mathml.Inline)
	r.Begin(&buf)

	done, err := r.Feed(sc, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Fatal("Feed reported done at a newline")
	}

	done, err = r.Feed(sc, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Fatal("Feed did not report done at the closing delimiter")
	}
	r.End(&buf)

	want := "<math><mi>a</mi><mi>b</mi></math>"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestUnknownMacro(t *testing.T) {
	t.Parallel()

	sc := scan.New("post.md", []byte(`\frobnicate$`))
	r := mathml.New(mathml.Inline)
	var buf strings.Builder
	r.Begin(&buf)

	_, err := r.Feed(sc, &buf)
	if err == nil {
		t.Fatal("unknown macro did not fail")
	}
	scanErr, ok := err.(*scan.Error)
	if !ok {
		t.Fatalf("error type = %T, want *scan.Error", err)
	}
	if !strings.Contains(scanErr.Msg, `\frobnicate`) {
		t.Errorf("message %q does not name the macro", scanErr.Msg)
	}
	if scanErr.Line != 1 || scanErr.Column != 1 {
		t.Errorf("location = %d:%d, want 1:1", scanErr.Line, scanErr.Column)
	}
}

func TestUnterminatedMath(t *testing.T) {
	t.Parallel()

	sc := scan.New("post.md", []byte("x + y"))
	r := mathml.New(mathml.Inline)
	var buf strings.Builder

	_, err := r.Feed(sc, &buf)
	if err == nil {
		t.Fatal("unterminated math did not fail")
	}
}

func TestScriptWithoutBase(t *testing.T) {
	t.Parallel()

	sc := scan.New("post.md", []byte("^2$"))
	r := mathml.New(mathml.Inline)
	var buf strings.Builder

	_, err := r.Feed(sc, &buf)
	if err == nil {
		t.Fatal("dangling superscript did not fail")
	}
}

func TestGroupDepthBounded(t *testing.T) {
	t.Parallel()

	deep := strings.Repeat("{", 9) + "x" + strings.Repeat("}", 9) + "$"
	sc := scan.New("post.md", []byte(deep))
	r := mathml.New(mathml.Inline)
	var buf strings.Builder

	_, err := r.Feed(sc, &buf)
	if err == nil {
		t.Fatal("deep nesting did not fail")
	}
}

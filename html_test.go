package logscreen

import (
	"strings"
	"testing"
)

func renderToString(t *testing.T, s *Screen) string {
	t.Helper()

	var b strings.Builder
	if err := s.RenderHTML(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b.String()
}

func TestHTMLPlainText(t *testing.T) {
	s := New()
	s.WriteString("hello")

	got := renderToString(t, s)
	want := `<pre class="logscreen"><div><span style="font-weight:normal">hello</span>` + "\n" + `</div></pre>`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHTMLOneDivPerRow(t *testing.T) {
	s := New()
	s.WriteString("a\nb\nc")

	got := renderToString(t, s)
	if n := strings.Count(got, "<div>"); n != 3 {
		t.Errorf("expected 3 divs, got %d in %q", n, got)
	}
}

func TestHTMLForegroundClass(t *testing.T) {
	s := New()
	s.WriteString("\x1b[31mred")

	got := renderToString(t, s)
	if !strings.Contains(got, `class="ansi-red-fg"`) {
		t.Errorf("expected ansi-red-fg class, got %q", got)
	}
}

func TestHTMLBackgroundClass(t *testing.T) {
	s := New()
	s.WriteString("\x1b[44mblue")

	got := renderToString(t, s)
	if !strings.Contains(got, `class="ansi-blue-bg"`) {
		t.Errorf("expected ansi-blue-bg class, got %q", got)
	}
}

func TestHTMLBoldPromotesToBright(t *testing.T) {
	s := New()
	s.WriteString("\x1b[1;31mx")

	got := renderToString(t, s)
	if !strings.Contains(got, "ansi-bright-red-fg") {
		t.Errorf("expected bold red to render bright, got %q", got)
	}
	if !strings.Contains(got, `style="font-weight:bold"`) {
		t.Errorf("expected bold font-weight, got %q", got)
	}
}

func TestHTMLBrightColorIgnoresBold(t *testing.T) {
	s := New()
	s.WriteString("\x1b[92mx")

	got := renderToString(t, s)
	if !strings.Contains(got, "ansi-bright-green-fg") {
		t.Errorf("expected bright green class, got %q", got)
	}
	if !strings.Contains(got, `style="font-weight:normal"`) {
		t.Errorf("expected normal font-weight, got %q", got)
	}
}

func TestHTMLBoldWithoutColor(t *testing.T) {
	s := New()
	s.WriteString("\x1b[1mx")

	got := renderToString(t, s)
	if !strings.Contains(got, "ansi-bold") {
		t.Errorf("expected ansi-bold class, got %q", got)
	}
}

func TestHTMLInvertedSwapsColors(t *testing.T) {
	s := New()
	s.WriteString("\x1b[7;31;44mx")

	got := renderToString(t, s)
	if !strings.Contains(got, "ansi-blue-fg") {
		t.Errorf("expected background presented as foreground, got %q", got)
	}
	if !strings.Contains(got, "ansi-red-bg") {
		t.Errorf("expected foreground presented as background, got %q", got)
	}
}

func TestHTMLEscapesText(t *testing.T) {
	s := New()
	s.WriteString("a <b> & c")

	got := renderToString(t, s)
	if !strings.Contains(got, "a &lt;b&gt; &amp; c") {
		t.Errorf("expected escaped text, got %q", got)
	}
}

func TestHTMLNodeTree(t *testing.T) {
	s := New()
	s.WriteString("x\ny")

	node := s.HTML()
	if node.Data != "pre" {
		t.Errorf("expected pre root, got %q", node.Data)
	}

	divs := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Data == "div" {
			divs++
		}
	}
	if divs != 2 {
		t.Errorf("expected 2 div children, got %d", divs)
	}
}

func TestFlushDirtyHTML(t *testing.T) {
	s := New()
	s.WriteString("a\nb")

	first, err := s.FlushDirtyHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 dirty rows, got %#v", first)
	}
	if first[0].Row != 0 || first[1].Row != 1 {
		t.Errorf("expected rows 0 and 1, got %#v", first)
	}
	if !strings.Contains(first[0].HTML, ">a</span>") {
		t.Errorf("expected row 0 html to contain 'a', got %q", first[0].HTML)
	}

	// Nothing changed since the flush.
	second, err := s.FlushDirtyHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("expected no dirty rows, got %#v", second)
	}

	// Overwriting row 1 dirties only row 1.
	s.WriteString("!")
	third, err := s.FlushDirtyHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(third) != 1 || third[0].Row != 1 {
		t.Errorf("expected only row 1 dirty, got %#v", third)
	}
}

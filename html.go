package logscreen

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML projects the screen to an HTML node tree: a <pre> element containing
// one <div> per row, each holding one styled <span> per chunk followed by a
// newline text node.
//
// Span styling follows the class scheme used by ANSI stylesheets: color
// classes such as "ansi-red-fg" and "ansi-bright-blue-bg", with bold text
// promoted to the bright palette, plus an inline font-weight style.
func (s *Screen) HTML() *html.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	pre := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Pre,
		Data:     "pre",
		Attr:     []html.Attribute{{Key: "class", Val: "logscreen"}},
	}
	for _, line := range s.lines {
		pre.AppendChild(lineNode(line))
	}
	return pre
}

// RenderHTML writes the serialized HTML projection of the screen to w.
func (s *Screen) RenderHTML(w io.Writer) error {
	return html.Render(w, s.HTML())
}

// DirtyLine pairs a row index with its rendered HTML.
type DirtyLine struct {
	Row  int    `json:"row"`
	HTML string `json:"html"`
}

// FlushDirtyHTML renders the rows modified since the last flush and clears
// their dirty state. Rows untouched between flushes are never re-rendered,
// so streaming consumers pay only for what changed.
func (s *Screen) FlushDirtyHTML() ([]DirtyLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []DirtyLine
	var buf bytes.Buffer
	for row, dirty := range s.dirty {
		if !dirty {
			continue
		}
		buf.Reset()
		if err := html.Render(&buf, lineNode(s.lines[row])); err != nil {
			return nil, err
		}
		out = append(out, DirtyLine{Row: row, HTML: buf.String()})
		s.dirty[row] = false
	}
	return out, nil
}

// lineNode builds the <div> element for one row.
func lineNode(line Line) *html.Node {
	div := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
	}
	for _, chunk := range line {
		div.AppendChild(chunkNode(chunk))
	}
	div.AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
	return div
}

// chunkNode builds the <span> element for one chunk.
func chunkNode(chunk Chunk) *html.Node {
	weight := "normal"
	if chunk.Style.Bold {
		weight = "bold"
	}

	attrs := []html.Attribute{{Key: "style", Val: "font-weight:" + weight}}
	if classes := styleClasses(chunk.Style); classes != "" {
		attrs = append(attrs, html.Attribute{Key: "class", Val: classes})
	}

	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr:     attrs,
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: chunk.Text})
	return span
}

// styleClasses derives the span class list from a style. Inversion swaps the
// foreground and background before class derivation.
func styleClasses(st Style) string {
	fg, bg := st.Foreground, st.Background
	if st.Inverted {
		fg, bg = bg, fg
	}

	classes := append(colorClasses(fg, "-fg", st.Bold), colorClasses(bg, "-bg", st.Bold)...)
	return strings.Join(classes, " ")
}

// colorClasses returns the class emission for one side (foreground or
// background). Bold promotes standard colors to their bright class; bold with
// no color emits the bare "ansi-bold" class.
func colorClasses(c Color, suffix string, bold bool) []string {
	switch {
	case c == ColorNone && bold:
		return []string{"ansi-bold"}
	case c == ColorNone:
		return nil
	case c.IsBright() || bold:
		return []string{"ansi-bright-" + c.Name() + suffix}
	default:
		return []string{"ansi-" + c.Name() + suffix}
	}
}

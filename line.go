package logscreen

import (
	"strings"
	"unicode/utf8"
)

// Chunk is a contiguous run of printable code units drawn with a single style.
// Text is never empty.
type Chunk struct {
	Text  string
	Style Style
}

// Width returns the chunk's width in columns. One rune occupies one column.
func (c Chunk) Width() int {
	return utf8.RuneCountInString(c.Text)
}

// Line is an ordered sequence of chunks making up one buffer row.
// Adjacent chunks with equal styles are kept separate; the buffer is
// append-biased and splits chunks only for mid-row overwrites.
type Line []Chunk

// Width returns the column index one past the last printed cell.
func (l Line) Width() int {
	w := 0
	for _, c := range l {
		w += c.Width()
	}
	return w
}

// Text returns the concatenated text of all chunks.
func (l Line) Text() string {
	var b strings.Builder
	for _, c := range l {
		b.WriteString(c.Text)
	}
	return b.String()
}

// write overwrites columns [col, col+chunk.Width()) with chunk and returns
// the resulting line. Writing past the end pads the gap with spaces in the
// chunk's style. Writing an empty chunk returns the line unchanged.
func (l Line) write(col int, chunk Chunk) Line {
	if chunk.Text == "" {
		return l
	}

	width := l.Width()
	switch {
	case col == width:
		out := make(Line, len(l), len(l)+1)
		copy(out, l)
		return append(out, chunk)

	case col < width:
		out := l.takePrefix(col)
		out = append(out, chunk)
		return append(out, l.dropPrefix(col+chunk.Width())...)

	default:
		out := make(Line, len(l), len(l)+2)
		copy(out, l)
		out = append(out, Chunk{Text: spaces(col - width), Style: chunk.Style})
		return append(out, chunk)
	}
}

// takePrefix returns the prefix covering the first n columns.
// A chunk spanning column n is truncated by rune count.
func (l Line) takePrefix(n int) Line {
	if n <= 0 {
		return nil
	}

	var out Line
	w := 0
	for _, c := range l {
		cw := c.Width()
		if w+cw <= n {
			out = append(out, c)
			w += cw
			if w == n {
				break
			}
			continue
		}
		runes := []rune(c.Text)
		out = append(out, Chunk{Text: string(runes[:n-w]), Style: c.Style})
		break
	}
	return out
}

// dropPrefix returns the suffix starting at column n.
// A chunk spanning column n is truncated by rune count.
func (l Line) dropPrefix(n int) Line {
	if n <= 0 {
		return l
	}

	var out Line
	w := 0
	for _, c := range l {
		cw := c.Width()
		if w+cw <= n {
			w += cw
			continue
		}
		if w < n {
			runes := []rune(c.Text)
			out = append(out, Chunk{Text: string(runes[n-w:]), Style: c.Style})
		} else {
			out = append(out, c)
		}
		w += cw
	}
	return out
}

// eraseToEnd truncates the line at col.
func (l Line) eraseToEnd(col int) Line {
	return l.takePrefix(col)
}

// eraseToBeginning blanks columns [0, col) with spaces in the given style.
// The suffix from col onward is untouched.
func (l Line) eraseToBeginning(col int, style Style) Line {
	if col <= 0 {
		return l
	}
	return l.write(0, Chunk{Text: spaces(col), Style: style})
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

package logscreen

import "strings"

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
)

// Snapshot represents a complete screen capture, suitable for JSON encoding.
type Snapshot struct {
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotCursor holds cursor state.
type SnapshotCursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SnapshotLine represents a single line in the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
}

// SnapshotSegment represents a styled text segment within a line.
// Segments map one-to-one onto the line's chunks.
type SnapshotSegment struct {
	Text  string        `json:"text"`
	Fg    string        `json:"fg,omitempty"`
	Bg    string        `json:"bg,omitempty"`
	Attrs SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold      bool `json:"bold,omitempty"`
	Faint     bool `json:"faint,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`
	Inverted  bool `json:"inverted,omitempty"`
}

// Snapshot creates a snapshot of the current screen state.
// The detail parameter controls how much information is included.
func (s *Screen) Snapshot(detail SnapshotDetail) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		Cursor: SnapshotCursor{
			Row: s.cursor.Row,
			Col: s.cursor.Col,
		},
		Lines: make([]SnapshotLine, len(s.lines)),
	}

	for row, line := range s.lines {
		snap.Lines[row] = snapshotLine(line, detail)
	}

	return snap
}

// snapshotLine creates a snapshot of a single line.
func snapshotLine(line Line, detail SnapshotDetail) SnapshotLine {
	out := SnapshotLine{
		Text: strings.TrimRight(line.Text(), " "),
	}

	if detail != SnapshotDetailStyled {
		return out
	}

	for _, chunk := range line {
		out.Segments = append(out.Segments, SnapshotSegment{
			Text: chunk.Text,
			Fg:   snapshotColor(chunk.Style.Foreground),
			Bg:   snapshotColor(chunk.Style.Background),
			Attrs: SnapshotAttrs{
				Bold:      chunk.Style.Bold,
				Faint:     chunk.Style.Faint,
				Italic:    chunk.Style.Italic,
				Underline: chunk.Style.Underline,
				Inverted:  chunk.Style.Inverted,
			},
		})
	}

	return out
}

// snapshotColor names a palette color for serialization.
// Bright variants carry a "bright-" prefix; ColorNone is empty.
func snapshotColor(c Color) string {
	if c == ColorNone {
		return ""
	}
	if c.IsBright() {
		return "bright-" + c.Name()
	}
	return c.Name()
}

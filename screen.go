package logscreen

import (
	"strings"
	"sync"
)

// LineDiscipline selects how a line feed affects the cursor column.
type LineDiscipline int

const (
	// Cooked resets the column to 0 on line feed (the common terminal behavior).
	Cooked LineDiscipline = iota
	// Raw preserves the column on line feed, as a raw tty would.
	Raw
)

// Position identifies a cell location in the screen grid (0-based).
type Position struct {
	Row int
	Col int
}

// Screen interprets a stream of bytes containing text and ANSI escape
// sequences and maintains the resulting grid of styled lines.
//
// The grid grows on demand: writing to a row beyond the current height
// appends blank rows. Lines are sparse sequences of styled chunks; columns
// are counted in runes, one rune per column.
//
// All methods are safe for concurrent use. The screen holds no resources
// other than its line buffer.
type Screen struct {
	mu sync.Mutex

	discipline LineDiscipline
	lines      []Line
	dirty      []bool
	cursor     Position
	saved      *Position
	style      Style

	// Unterminated escape bytes from the previous Write, prepended to the
	// next chunk before parsing.
	remainder string

	// Maximum number of lines to retain, 0 for unlimited.
	maxLines int
}

// Option configures a Screen during construction.
type Option func(*Screen)

// WithLineDiscipline sets how line feeds affect the cursor column.
// The default is Cooked.
func WithLineDiscipline(d LineDiscipline) Option {
	return func(s *Screen) {
		s.discipline = d
	}
}

// WithMaxLines caps the number of retained lines. Once the buffer exceeds n
// lines the oldest are discarded and the cursor shifts up accordingly.
// Zero (the default) retains everything.
func WithMaxLines(n int) Option {
	return func(s *Screen) {
		if n > 0 {
			s.maxLines = n
		}
	}
}

// New creates an empty screen with the cursor at (0, 0) and default style.
func New(opts ...Option) *Screen {
	s := &Screen{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write feeds a chunk of terminal output into the screen. Chunks may be cut
// at arbitrary byte boundaries, including mid-escape; an unterminated escape
// sequence is buffered and resumed on the next call. Write never fails.
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.update(string(p))
	return len(p), nil
}

// WriteString feeds a string of terminal output into the screen.
func (s *Screen) WriteString(str string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.update(str)
}

// update parses the pending remainder plus the new chunk and applies the
// resulting actions in order.
func (s *Screen) update(input string) {
	input = s.remainder + input
	s.remainder = ""

	for _, action := range parseANSI(input) {
		s.apply(action)
	}
}

// apply mutates the screen according to a single action.
func (s *Screen) apply(action Action) {
	switch a := action.(type) {
	case Print:
		chunk := Chunk{Text: a.Text, Style: s.style}
		col := s.cursor.Col
		s.updateLine(s.cursor.Row, func(l Line) Line {
			return l.write(col, chunk)
		})
		s.cursor.Col += chunk.Width()

	case CarriageReturn:
		s.cursor.Col = 0

	case Linebreak:
		s.cursor.Row++
		if s.discipline == Cooked {
			s.cursor.Col = 0
		}
		// Materialize the new row so that a trailing newline shows up as a
		// visible blank line even if nothing is printed after it.
		s.updateLine(s.cursor.Row, func(l Line) Line { return l })

	case CursorUp:
		s.cursor.Row = max(0, s.cursor.Row-a.N)

	case CursorDown:
		s.cursor.Row += a.N

	case CursorForward:
		s.cursor.Col += a.N

	case CursorBack:
		s.cursor.Col = max(0, s.cursor.Col-a.N)

	case CursorPosition:
		s.cursor.Row = max(0, a.Row-1)
		s.cursor.Col = max(0, a.Col-1)

	case CursorColumn:
		// The parameter is applied without the 1-based adjustment that
		// CursorPosition performs.
		s.cursor.Col = max(0, a.Col)

	case SaveCursorPosition:
		saved := s.cursor
		s.saved = &saved

	case RestoreCursorPosition:
		if s.saved != nil {
			s.cursor = *s.saved
		}

	case EraseLine:
		col, style := s.cursor.Col, s.style
		s.updateLine(s.cursor.Row, func(l Line) Line {
			switch a.Mode {
			case EraseToBeginning:
				return l.eraseToBeginning(col, style)
			case EraseAll:
				return nil
			default:
				return l.eraseToEnd(col)
			}
		})

	case Remainder:
		s.remainder = a.Text

	default:
		s.style = s.style.apply(action)
	}
}

// updateLine replaces the given row with fn(row), appending blank rows first
// if the buffer is shorter. The touched row and any appended rows are marked
// dirty for the renderer.
func (s *Screen) updateLine(row int, fn func(Line) Line) {
	for len(s.lines) <= row {
		s.lines = append(s.lines, nil)
		s.dirty = append(s.dirty, true)
	}
	s.lines[row] = fn(s.lines[row])
	s.dirty[row] = true
	s.trim()
}

// trim drops the oldest lines once the buffer exceeds maxLines.
func (s *Screen) trim() {
	if s.maxLines <= 0 || len(s.lines) <= s.maxLines {
		return
	}

	n := len(s.lines) - s.maxLines
	s.lines = append([]Line(nil), s.lines[n:]...)
	s.cursor.Row = max(0, s.cursor.Row-n)
	if s.saved != nil {
		s.saved.Row = max(0, s.saved.Row-n)
	}

	// Every remaining row shifted position, so cached renders are stale.
	s.dirty = make([]bool, len(s.lines))
	for i := range s.dirty {
		s.dirty[i] = true
	}
}

// Rows returns the current number of lines in the buffer.
func (s *Screen) Rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.lines)
}

// Line returns the chunks of a row. Returns nil if the row is out of range.
// The returned slice must not be modified.
func (s *Screen) Line(row int) Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 0 || row >= len(s.lines) {
		return nil
	}
	return s.lines[row]
}

// LineText returns the text content of a row with trailing spaces trimmed.
// Returns empty string if the row is out of range.
func (s *Screen) LineText(row int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 0 || row >= len(s.lines) {
		return ""
	}
	return strings.TrimRight(s.lines[row].Text(), " ")
}

// String returns the whole buffer as plain text, one line per row.
func (s *Screen) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts := make([]string, len(s.lines))
	for i, l := range s.lines {
		texts[i] = strings.TrimRight(l.Text(), " ")
	}
	return strings.Join(texts, "\n")
}

// CursorPos returns the cursor position (0-based row, col).
func (s *Screen) CursorPos() (row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor.Row, s.cursor.Col
}

// Style returns the SGR attributes currently in effect.
func (s *Screen) Style() Style {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.style
}

// Package logscreen renders captured terminal output into a grid of styled
// lines that can be projected to HTML, JSON snapshots, or images.
//
// The package interprets a stream of bytes containing printable text
// interleaved with ANSI escape sequences and maintains the cumulative result:
// cursor movement, in-place overwrites, line erasure, and SGR styling are all
// applied, so progress bars and spinners collapse to their final appearance.
// It is meant to be embedded in tools that post-process captured output, such
// as CI log viewers and build dashboards.
//
// # Quick Start
//
// Create a screen and write ANSI bytes to it:
//
//	screen := logscreen.New()
//	screen.WriteString("\x1b[31mred\x1b[0m black")
//	fmt.Println(screen.String()) // "red black"
//
// # Incremental Input
//
// Screen implements [io.Writer], and input may be cut at arbitrary byte
// boundaries — including in the middle of an escape sequence. An unterminated
// escape is buffered and resumed on the next write, so streaming a log in
// chunks produces exactly the same screen as writing it all at once:
//
//	cmd := exec.Command("make", "test")
//	cmd.Stdout = screen
//	cmd.Run()
//
// # Lines and Chunks
//
// Each row is a [Line]: an ordered sequence of [Chunk] values, each a run of
// text drawn with a single [Style]. The buffer grows on demand as rows are
// written and never shrinks unless [WithMaxLines] is set:
//
//	for row := 0; row < screen.Rows(); row++ {
//	    for _, chunk := range screen.Line(row) {
//	        fmt.Printf("%q fg=%v bold=%v\n", chunk.Text, chunk.Style.Foreground, chunk.Style.Bold)
//	    }
//	}
//
// # Line Discipline
//
// The screen supports two line feed behaviors. Cooked (the default) resets
// the column to 0 on '\n'; Raw preserves the column, as a raw tty would:
//
//	screen := logscreen.New(logscreen.WithLineDiscipline(logscreen.Raw))
//
// # HTML Projection
//
// The HTML projection emits one <div> per row with one <span> per chunk,
// classed for use with an ANSI stylesheet ("ansi-red-fg", "ansi-bright-blue-bg",
// "ansi-bold"). Bold text is promoted to the bright palette:
//
//	screen.RenderHTML(os.Stdout)
//
// For streaming consumers, [Screen.FlushDirtyHTML] returns only the rows
// modified since the last flush, so unchanged rows are never re-rendered.
//
// # Snapshots
//
// Capture the screen state for serialization:
//
//	snap := screen.Snapshot(logscreen.SnapshotDetailStyled)
//	data, _ := json.Marshal(snap)
//
// # Screenshots
//
// Render the screen to an image:
//
//	img := screen.Screenshot()
//	png.Encode(f, img)
//
// # Supported Sequences
//
// The parser recognizes CR, LF, and the CSI sequences for SGR styling (m),
// cursor movement (A, B, C, D, H, f, G), cursor save/restore (s, u), and line
// erasure (K). SGR support covers the sixteen standard and bright colors and
// the bold, faint, italic, underline, and inverted flags. Unrecognized CSI
// sequences are dropped; unknown SGR codes are ignored.
//
// # Thread Safety
//
// All Screen methods are safe for concurrent use. The screen uses internal
// locking to protect state. However, if you need to perform multiple
// operations atomically, you should use your own synchronization.
package logscreen

package logscreen

import (
	"encoding/json"
	"testing"
)

func TestSnapshotText(t *testing.T) {
	s := New()
	s.WriteString("hello\nworld")

	snap := s.Snapshot(SnapshotDetailText)

	if len(snap.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(snap.Lines))
	}
	if snap.Lines[0].Text != "hello" || snap.Lines[1].Text != "world" {
		t.Errorf("expected 'hello'/'world', got %q/%q", snap.Lines[0].Text, snap.Lines[1].Text)
	}
	if snap.Lines[0].Segments != nil {
		t.Error("expected no segments at text detail")
	}
}

func TestSnapshotCursor(t *testing.T) {
	s := New()
	s.WriteString("ab\ncd")

	snap := s.Snapshot(SnapshotDetailText)

	if snap.Cursor.Row != 1 || snap.Cursor.Col != 2 {
		t.Errorf("expected cursor (1,2), got (%d,%d)", snap.Cursor.Row, snap.Cursor.Col)
	}
}

func TestSnapshotStyledSegments(t *testing.T) {
	s := New()
	s.WriteString("\x1b[1;31mred\x1b[0m plain")

	snap := s.Snapshot(SnapshotDetailStyled)

	segs := snap.Lines[0].Segments
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %#v", segs)
	}
	if segs[0].Text != "red" || segs[0].Fg != "red" || !segs[0].Attrs.Bold {
		t.Errorf("expected bold red segment, got %#v", segs[0])
	}
	if segs[1].Text != " plain" || segs[1].Fg != "" || segs[1].Attrs.Bold {
		t.Errorf("expected plain segment, got %#v", segs[1])
	}
}

func TestSnapshotBrightColorNames(t *testing.T) {
	s := New()
	s.WriteString("\x1b[96;103mx")

	segs := s.Snapshot(SnapshotDetailStyled).Lines[0].Segments
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %#v", segs)
	}
	if segs[0].Fg != "bright-cyan" {
		t.Errorf("expected fg 'bright-cyan', got %q", segs[0].Fg)
	}
	if segs[0].Bg != "bright-yellow" {
		t.Errorf("expected bg 'bright-yellow', got %q", segs[0].Bg)
	}
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	s := New()
	s.WriteString("\x1b[32mok\x1b[0m fine")

	data, err := json.Marshal(s.Snapshot(SnapshotDetailStyled))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Lines[0].Text != "ok fine" {
		t.Errorf("expected 'ok fine', got %q", decoded.Lines[0].Text)
	}
	if decoded.Lines[0].Segments[0].Fg != "green" {
		t.Errorf("expected fg 'green', got %q", decoded.Lines[0].Segments[0].Fg)
	}
}

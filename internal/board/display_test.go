package board

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	out := Render(StartPosition())
	lines := strings.Split(out, "\n")

	want := []string{
		"",
		"8  r n b q k b n r ",
		"7  p p p p p p p p ",
		"6  . . . . . . . . ",
		"5  . . . . . . . . ",
		"4  . . . . . . . . ",
		"3  . . . . . . . . ",
		"2  P P P P P P P P ",
		"1  R N B Q K B N R ",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	for _, s := range []string{"Side to move: White", "Castling: KQkq", "En passant: -", "Half-move clock: 0", "Full move: 1"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestDisplay(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/8/8/8/8 b - e3 5 9")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var buf bytes.Buffer
	if err := Display(&buf, pos); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if buf.String() != pos.String() {
		t.Error("Display and String disagree")
	}
	grid := strings.Join(strings.Split(buf.String(), "\n")[:9], "\n")
	if strings.ContainsAny(grid, "PNBRQKpnbrqk") {
		t.Errorf("empty board rendered pieces:\n%s", grid)
	}
	if !strings.Contains(buf.String(), "Side to move: Black") || !strings.Contains(buf.String(), "En passant: e3") {
		t.Errorf("state lines wrong:\n%s", buf.String())
	}
}

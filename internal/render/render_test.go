package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/hailam/fenboard/internal/board"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		c    board.Color
		pt   board.PieceType
		want string
	}{
		{board.White, board.Pawn, "wP.png"},
		{board.White, board.Rook, "wR.png"},
		{board.White, board.Knight, "wN.png"},
		{board.White, board.Bishop, "wB.png"},
		{board.White, board.Queen, "wQ.png"},
		{board.White, board.King, "wK.png"},
		{board.Black, board.Pawn, "bP.png"},
		{board.Black, board.King, "bK.png"},
		{board.White, board.None, BlankAsset},
		{board.Black, board.NumPieceTypes, BlankAsset},
		{board.NoColor, board.None, BlankAsset},
		{board.NoColor, board.Queen, BlankAsset},
	}
	for _, tc := range tests {
		if got := AssetName(tc.c, tc.pt); got != tc.want {
			t.Errorf("AssetName(%s, %s) = %q, want %q", tc.c, tc.pt, got, tc.want)
		}
	}
}

func TestSquares(t *testing.T) {
	views := Squares(board.StartPosition())
	if len(views) != 64 {
		t.Fatalf("got %d squares, want 64", len(views))
	}
	for i, v := range views {
		if v.Index != i {
			t.Fatalf("views[%d].Index = %d", i, v.Index)
		}
	}
	a1, e1, e4, h8 := views[board.A1], views[board.E1], views[board.E4], views[board.H8]
	if a1.Color != "dark" || a1.Asset != "wR.png" || a1.Piece != "R" || a1.Name != "a1" {
		t.Errorf("a1 = %+v", a1)
	}
	if e1.Asset != "wK.png" {
		t.Errorf("e1 = %+v", e1)
	}
	if e4.Asset != BlankAsset || e4.Piece != "" || e4.Color != "light" {
		t.Errorf("e4 = %+v", e4)
	}
	if h8.Asset != "bR.png" || h8.Color != "dark" {
		t.Errorf("h8 = %+v", h8)
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, board.StartPosition(), DefaultOptions()); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "viewBox") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// Background plus 64 squares.
	if got := strings.Count(out, "<rect"); got != 65 {
		t.Errorf("rect count = %d, want 65", got)
	}
	// 32 pieces plus 16 coordinate labels.
	if got := strings.Count(out, "<text"); got != 48 {
		t.Errorf("text count = %d, want 48", got)
	}

	buf.Reset()
	opts := DefaultOptions()
	opts.Coordinates = false
	if err := SVG(&buf, board.NewPosition(), opts); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if strings.Contains(buf.String(), "<text") {
		t.Error("empty board without coordinates has text")
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestSVGWriteError(t *testing.T) {
	if err := SVG(failingWriter{}, board.StartPosition(), DefaultOptions()); !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want %v", err, errWrite)
	}
}

func TestOptionsLayout(t *testing.T) {
	o := DefaultOptions()
	w, h := o.Size()
	if w != 8*64+21 || h != w {
		t.Errorf("Size = %dx%d", w, h)
	}
	if sq := o.squareAt(0, 7); sq != board.A1 {
		t.Errorf("bottom-left = %s, want a1", sq)
	}
	o.Flip = true
	if sq := o.squareAt(0, 7); sq != board.H8 {
		t.Errorf("flipped bottom-left = %s, want h8", sq)
	}
	if got := (Options{}).withDefaults(); got.SquareSize != 64 || got.Light == (color.RGBA{}) {
		t.Errorf("withDefaults = %+v", got)
	}
}

func TestPNG(t *testing.T) {
	opts := DefaultOptions()
	opts.SquareSize = 32

	var buf bytes.Buffer
	if err := PNG(&buf, board.StartPosition(), opts); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	w, h := opts.Size()
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bounds = %v, want %dx%d", b, w, h)
	}

	// Top-left corner of the empty e4 square (light) and d4 (dark).
	check := func(sq board.Square, want color.RGBA) {
		col, row := sq.File(), 7-sq.Rank()
		x, y := opts.origin(col, row)
		r, g, b, _ := img.At(x+2, y+2).RGBA()
		got := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 255}
		if diff(got.R, want.R) > 8 || diff(got.G, want.G) > 8 || diff(got.B, want.B) > 8 {
			t.Errorf("%s pixel = %v, want %v", sq, got, want)
		}
	}
	check(board.E4, opts.Light)
	check(board.D4, opts.Dark)
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

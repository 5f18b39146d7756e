package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/hailam/fenboard/internal/board"
)

// Options control diagram layout and colors.
type Options struct {
	SquareSize  int  // pixels per square, default 64
	Flip        bool // draw from Black's side
	Coordinates bool // draw file letters and rank numbers

	Light color.RGBA
	Dark  color.RGBA
}

// DefaultOptions returns the default diagram options.
func DefaultOptions() Options {
	return Options{
		SquareSize:  64,
		Coordinates: true,
		Light:       color.RGBA{240, 217, 181, 255}, // Tan
		Dark:        color.RGBA{181, 136, 99, 255},  // Brown
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SquareSize <= 0 {
		o.SquareSize = d.SquareSize
	}
	if o.Light == (color.RGBA{}) {
		o.Light = d.Light
	}
	if o.Dark == (color.RGBA{}) {
		o.Dark = d.Dark
	}
	return o
}

// margin is the space reserved for coordinates on the left and bottom.
func (o Options) margin() int {
	if !o.Coordinates {
		return 0
	}
	return o.SquareSize / 3
}

// Size returns the diagram width and height in pixels.
func (o Options) Size() (int, int) {
	o = o.withDefaults()
	side := 8*o.SquareSize + o.margin()
	return side, side
}

// squareAt maps a display cell (col, row from the top-left) to a square.
func (o Options) squareAt(col, row int) board.Square {
	if o.Flip {
		return board.NewSquare(7-col, row)
	}
	return board.NewSquare(col, 7-row)
}

// origin returns the top-left pixel of a display cell.
func (o Options) origin(col, row int) (int, int) {
	return o.margin() + col*o.SquareSize, row * o.SquareSize
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// SVG writes an SVG diagram of the position to w.
func SVG(w io.Writer, p *board.Position, opts Options) error {
	return writeSVG(w, p, opts.withDefaults(), true)
}

// writeSVG draws the grid and, when withPieces is set, the pieces and
// coordinates as text. The rasterizer cannot draw text, so Image asks for the
// grid only and adds glyphs itself.
func writeSVG(w io.Writer, p *board.Position, o Options, withPieces bool) error {
	ew := &errWriter{w: w}
	width, height := o.Size()
	sz := o.SquareSize

	canvas := svg.New(ew)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := o.squareAt(col, row)
			x, y := o.origin(col, row)
			fill := o.Dark
			if sq.IsLight() {
				fill = o.Light
			}
			canvas.Rect(x, y, sz, sz, "fill:"+hexColor(fill))

			if !withPieces {
				continue
			}
			piece := p.PieceAt(sq)
			if piece == board.NoPiece {
				continue
			}
			style := fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-weight:bold;font-size:%dpx;", sz*3/5)
			if piece.Color() == board.White {
				style += "fill:#ffffff;stroke:#000000;stroke-width:2"
			} else {
				style += "fill:#000000"
			}
			canvas.Text(x+sz/2, y+sz*7/10, string(piece.Type().Char()-'a'+'A'), style)
		}
	}

	if withPieces && o.Coordinates {
		m := o.margin()
		labelStyle := fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%dpx;fill:#333333", m*3/4)
		for i := 0; i < 8; i++ {
			sq := o.squareAt(i, i)
			x, y := o.origin(i, i)
			canvas.Text(x+sz/2, 8*sz+m*3/4, string(rune('a'+sq.File())), labelStyle)
			canvas.Text(m/2, y+sz/2+m/4, string(rune('1'+sq.Rank())), labelStyle)
		}
	}

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error, since svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return len(b), nil
	}
	n, err := e.w.Write(b)
	if err != nil {
		e.err = err
	}
	return n, nil
}

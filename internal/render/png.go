package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/hailam/fenboard/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var boldFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

func newFace(size float64) (font.Face, error) {
	f, err := boldFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Image rasterizes the position. The square grid is drawn from the SVG
// diagram; piece letters and coordinates are drawn as glyphs on top.
func Image(p *board.Position, opts Options) (*image.RGBA, error) {
	o := opts.withDefaults()
	width, height := o.Size()

	var buf bytes.Buffer
	if err := writeSVG(&buf, p, o, false); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)

	pieceFace, err := newFace(float64(o.SquareSize) * 0.6)
	if err != nil {
		return nil, err
	}
	defer pieceFace.Close()

	sz := o.SquareSize
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := p.PieceAt(o.squareAt(col, row))
			if piece == board.NoPiece {
				continue
			}
			x, y := o.origin(col, row)
			letter := string(board.NewPiece(piece.Type(), board.White).Char())
			if piece.Color() == board.White {
				for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					drawCentered(rgba, pieceFace, letter, x+sz/2+d[0], y+sz/2+d[1], color.Black)
				}
				drawCentered(rgba, pieceFace, letter, x+sz/2, y+sz/2, color.White)
			} else {
				drawCentered(rgba, pieceFace, letter, x+sz/2, y+sz/2, color.Black)
			}
		}
	}

	if o.Coordinates {
		m := o.margin()
		labelFace, err := newFace(float64(m) * 0.75)
		if err != nil {
			return nil, err
		}
		defer labelFace.Close()
		ink := color.RGBA{0x33, 0x33, 0x33, 0xff}
		for i := 0; i < 8; i++ {
			sq := o.squareAt(i, i)
			x, y := o.origin(i, i)
			drawCentered(rgba, labelFace, string(rune('a'+sq.File())), x+sz/2, 8*sz+m/2, ink)
			drawCentered(rgba, labelFace, string(rune('1'+sq.Rank())), m/2, y+sz/2, ink)
		}
	}

	return rgba, nil
}

// drawCentered draws s with its bounding box centered on (cx, cy).
func drawCentered(dst *image.RGBA, face font.Face, s string, cx, cy int, c color.Color) {
	metrics := face.Metrics()
	width := font.MeasureString(face, s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(cx) - width/2,
			Y: fixed.I(cy) + (metrics.Ascent-metrics.Descent)/2,
		},
	}
	d.DrawString(s)
}

// PNG writes the rasterized position to w.
func PNG(w io.Writer, p *board.Position, opts Options) error {
	img, err := Image(p, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Package render turns a board.Position into presentation artifacts: the
// per-square asset view model, SVG diagrams and PNG images.
package render

import "github.com/hailam/fenboard/internal/board"

// BlankAsset is the asset shown on empty squares.
const BlankAsset = "blank.png"

// assetTable maps (color, piece type) to an image name. It is filled once at
// init and never written afterwards.
var assetTable [board.NumColors][board.NumPieceTypes]string

func init() {
	prefixes := [board.NumColors]byte{board.White: 'w', board.Black: 'b'}
	for _, c := range board.ColorOrder {
		assetTable[c][board.None] = BlankAsset
		for _, pt := range board.PieceTypes {
			letter := board.NewPiece(pt, board.White).Char()
			assetTable[c][pt] = string([]byte{prefixes[c], letter}) + ".png"
		}
	}
}

// AssetName returns the image name for a piece of type pt and color c, e.g.
// "wK.png". None, NoColor and out-of-range values map to BlankAsset.
func AssetName(c board.Color, pt board.PieceType) string {
	if !c.IsValid() || pt >= board.NumPieceTypes {
		return BlankAsset
	}
	return assetTable[c][pt]
}

// SquareView describes one square for a board template.
type SquareView struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Color string `json:"color"` // "light" or "dark"
	Piece string `json:"piece,omitempty"`
	Asset string `json:"asset"`
}

// Squares returns a view of all 64 squares in index order (a1 first).
func Squares(p *board.Position) []SquareView {
	views := make([]SquareView, 0, board.NumSquares)
	for sq := board.A1; sq <= board.H8; sq++ {
		c, pt, _ := p.Resolve(sq)
		v := SquareView{
			Index: int(sq),
			Name:  sq.String(),
			Color: "dark",
			Asset: AssetName(c, pt),
		}
		if sq.IsLight() {
			v.Color = "light"
		}
		if pt != board.None {
			v.Piece = board.NewPiece(pt, c).String()
		}
		views = append(views, v)
	}
	return views
}

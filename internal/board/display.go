package board

import (
	"fmt"
	"io"
	"strings"
)

// Render returns a visual representation of the position: one line per rank
// with rank 8 first, '.' for empty squares, followed by the game state.
func Render(p *Position) string {
	var sb strings.Builder
	sb.WriteString("\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(piece.Char())
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.SideToMove)
	fmt.Fprintf(&sb, "Castling: %s\n", p.CastlingRights)
	fmt.Fprintf(&sb, "En passant: %s\n", p.EnPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.HalfMoveClock)
	fmt.Fprintf(&sb, "Full move: %d\n", p.FullMoveNumber)
	return sb.String()
}

// Display writes Render(p) to w.
func Display(w io.Writer, p *Position) error {
	_, err := io.WriteString(w, Render(p))
	return err
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	return Render(p)
}

package board

import "fmt"

// ColorOrder is the order in which Resolve scans the two sides.
var ColorOrder = [NumColors]Color{White, Black}

// ResolveOrder is the order in which Resolve scans a side's piece types.
// With disjoint bitboards the order cannot change the result.
var ResolveOrder = [...]PieceType{Pawn, Rook, Knight, Bishop, Queen, King}

// Resolve reports which color and piece type occupy sq. An empty square
// yields (NoColor, None, nil); a square outside 0-63 yields
// ErrSquareOutOfRange.
func Resolve(p *Position, sq Square) (Color, PieceType, error) {
	if !sq.IsValid() {
		return NoColor, None, fmt.Errorf("%w: %d", ErrSquareOutOfRange, sq)
	}
	bb := SquareBB(sq)
	for _, c := range ColorOrder {
		side := &p.sides[c]
		if side.all&bb == 0 {
			continue
		}
		for _, pt := range ResolveOrder {
			if side.bb[pt]&bb != 0 {
				return c, pt, nil
			}
		}
	}
	return NoColor, None, nil
}

// Resolve is the method form of the package-level Resolve.
func (p *Position) Resolve(sq Square) (Color, PieceType, error) {
	return Resolve(p, sq)
}

// PieceAt returns the piece at the given square, or NoPiece if the square is
// empty or off the board.
func (p *Position) PieceAt(sq Square) Piece {
	c, pt, err := Resolve(p, sq)
	if err != nil || pt == None {
		return NoPiece
	}
	return NewPiece(pt, c)
}

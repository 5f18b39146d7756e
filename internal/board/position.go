package board

import "fmt"

// CastlingRights represents the available castling options as four
// independent flags.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// castlingFlags pairs each flag with its FEN character, in FEN order.
var castlingFlags = [4]struct {
	flag CastlingRights
	char byte
}{
	{WhiteKingSideCastle, 'K'},
	{WhiteQueenSideCastle, 'Q'},
	{BlackKingSideCastle, 'k'},
	{BlackQueenSideCastle, 'q'},
}

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr&AllCastling == NoCastling {
		return "-"
	}
	s := make([]byte, 0, 4)
	for _, f := range castlingFlags {
		if cr&f.flag != 0 {
			s = append(s, f.char)
		}
	}
	return string(s)
}

// Has reports whether all flags in f are set.
func (cr CastlingRights) Has(f CastlingRights) bool {
	return cr&f == f
}

// CanCastle returns true if the given side holds the right to castle in the
// given direction. It says nothing about legality.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr.Has(WhiteKingSideCastle)
		}
		return cr.Has(WhiteQueenSideCastle)
	}
	if kingSide {
		return cr.Has(BlackKingSideCastle)
	}
	return cr.Has(BlackQueenSideCastle)
}

// Position represents a complete chess position. It is a plain value: copying
// it copies all state, and two positions compare equal with == exactly when
// every field matches.
type Position struct {
	sides [NumColors]Side

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // Target square for en passant, NoSquare if none
	HalfMoveClock  int    // Plies since last pawn move or capture
	FullMoveNumber int    // Full move counter, starts at 1
}

// NewPosition returns an empty board with White to move, no castling rights,
// no en passant target and default counters.
func NewPosition() *Position {
	return &Position{
		SideToMove:     White,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Copy returns a copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// Side returns the pieces of color c. Invalid colors yield an empty Side.
func (p *Position) Side(c Color) Side {
	if !c.IsValid() {
		return Side{}
	}
	return p.sides[c]
}

// Pieces returns the bitboard for the given color and piece type.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.Side(c).BB(pt)
}

// Occupied returns all squares occupied by color c.
func (p *Position) Occupied(c Color) Bitboard {
	return p.Side(c).All()
}

// AllOccupied returns all occupied squares.
func (p *Position) AllOccupied() Bitboard {
	return p.sides[White].all | p.sides[Black].all
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.AllOccupied()&SquareBB(sq) == 0
}

// Place puts a piece of type pt and color c on sq. It refuses to overwrite an
// occupied square so the position never holds two pieces on one square.
func (p *Position) Place(c Color, pt PieceType, sq Square) error {
	if !c.IsValid() || !pt.IsValid() {
		return fmt.Errorf("%w: %s %s", ErrInvalidPiece, c, pt)
	}
	if !sq.IsValid() {
		return fmt.Errorf("%w: %d", ErrSquareOutOfRange, sq)
	}
	if existing := p.PieceAt(sq); existing != NoPiece {
		return &InvariantViolation{Square: sq, Existing: existing, Incoming: NewPiece(pt, c)}
	}
	p.sides[c].set(pt, sq)
	return nil
}

// Remove clears sq and returns the piece that was there, if any.
func (p *Position) Remove(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}
	p.sides[piece.Color()].clear(sq)
	return piece
}

// Counts returns the number of pieces per color and piece type. Index None
// holds the side's total.
func (p *Position) Counts() [NumColors][NumPieceTypes]int {
	var counts [NumColors][NumPieceTypes]int
	for c := White; c <= Black; c++ {
		for _, pt := range PieceTypes {
			counts[c][pt] = p.sides[c].Count(pt)
		}
		counts[c][None] = p.sides[c].all.PopCount()
	}
	return counts
}

// Validate checks the structural invariants: each side's bitboards are
// disjoint, no square is claimed by both sides, and the game-state fields
// are in range.
func (p *Position) Validate() error {
	for c := White; c <= Black; c++ {
		if err := p.sides[c].Validate(); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
	}
	if both := p.sides[White].all & p.sides[Black].all; both != 0 {
		return &InvariantViolation{
			Square:   both.LSB(),
			Existing: NewPiece(p.sides[White].Type(both.LSB()), White),
			Incoming: NewPiece(p.sides[Black].Type(both.LSB()), Black),
		}
	}
	if !p.SideToMove.IsValid() {
		return fmt.Errorf("invalid side to move: %d", p.SideToMove)
	}
	if p.CastlingRights&^AllCastling != 0 {
		return fmt.Errorf("invalid castling rights: %#x", uint8(p.CastlingRights))
	}
	if p.EnPassant > NoSquare {
		return fmt.Errorf("invalid en passant square: %d", p.EnPassant)
	}
	if p.HalfMoveClock < 0 || p.HalfMoveClock > MaxCounter {
		return fmt.Errorf("halfmove clock out of range: %d", p.HalfMoveClock)
	}
	if p.FullMoveNumber < 1 || p.FullMoveNumber > MaxCounter {
		return fmt.Errorf("fullmove number out of range: %d", p.FullMoveNumber)
	}
	return nil
}

// Mirror returns the position with ranks flipped and colors swapped, so that
// Black's pieces stand where White's stood. Castling rights, side to move and
// the en passant target are swapped to match.
func (p *Position) Mirror() *Position {
	m := &Position{
		SideToMove:     p.SideToMove.Other(),
		EnPassant:      p.EnPassant.Mirror(),
		HalfMoveClock:  p.HalfMoveClock,
		FullMoveNumber: p.FullMoveNumber,
	}
	for c := White; c <= Black; c++ {
		src := p.sides[c]
		dst := &m.sides[c.Other()]
		for _, pt := range PieceTypes {
			dst.bb[pt] = src.bb[pt].FlipVertical()
		}
		dst.all = src.all.FlipVertical()
	}
	cr := p.CastlingRights
	m.CastlingRights = (cr&(WhiteKingSideCastle|WhiteQueenSideCastle))<<2 |
		(cr&(BlackKingSideCastle|BlackQueenSideCastle))>>2
	return m
}

package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// NumColors is the number of playing colors.
const NumColors = 2

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < NoColor
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece. The zero value None marks
// an empty square; NumPieceTypes is an out-of-range sentinel and never labels
// an occupied square.
type PieceType uint8

const (
	None PieceType = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceTypes
)

// PieceTypes lists the real piece types in enumeration order.
var PieceTypes = [...]PieceType{Pawn, Rook, Knight, Bishop, Queen, King}

// IsValid reports whether pt is one of Pawn..King.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

const pieceTypeChars = " prnbqk"

// Char returns the FEN character for the piece type (lowercase), or ' ' for
// None and out-of-range values.
func (pt PieceType) Char() byte {
	if !pt.IsValid() {
		return ' '
	}
	return pieceTypeChars[pt]
}

// Piece combines PieceType and Color into a single value.
// Encoded as: pieceType + color*NumPieceTypes, with NoPiece = 0.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*Piece(NumPieceTypes)
	WhiteRook   Piece = Piece(Rook) + Piece(White)*Piece(NumPieceTypes)
	WhiteKnight Piece = Piece(Knight) + Piece(White)*Piece(NumPieceTypes)
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*Piece(NumPieceTypes)
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*Piece(NumPieceTypes)
	WhiteKing   Piece = Piece(King) + Piece(White)*Piece(NumPieceTypes)
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*Piece(NumPieceTypes)
	BlackRook   Piece = Piece(Rook) + Piece(Black)*Piece(NumPieceTypes)
	BlackKnight Piece = Piece(Knight) + Piece(Black)*Piece(NumPieceTypes)
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*Piece(NumPieceTypes)
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*Piece(NumPieceTypes)
	BlackKing   Piece = Piece(King) + Piece(Black)*Piece(NumPieceTypes)
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if !pt.IsValid() || !c.IsValid() {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*Piece(NumPieceTypes)
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p > BlackKing {
		return None
	}
	return PieceType(p % Piece(NumPieceTypes))
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if !p.Type().IsValid() {
		return NoColor
	}
	return Color(p / Piece(NumPieceTypes))
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	return string(p.Char())
}

// Char returns the FEN byte for the piece, or ' ' for NoPiece.
func (p Piece) Char() byte {
	pt := p.Type()
	if !pt.IsValid() {
		return ' '
	}
	c := pt.Char()
	if p.Color() == White {
		c -= 'a' - 'A'
	}
	return c
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'R':
		return WhiteRook
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'r':
		return BlackRook
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

package board

import (
	"math"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// EmptyFEN is the FEN string for an empty board with default state.
const EmptyFEN = "8/8/8/8/8/8/8/8 w - - 0 1"

// FEN field names used in ParseError.Field.
const (
	FieldFEN       = "fen"
	FieldBoard     = "board"
	FieldSide      = "side"
	FieldCastling  = "castling"
	FieldEnPassant = "en-passant"
	FieldHalfmove  = "halfmove"
	FieldFullmove  = "fullmove"
)

// ParseFEN parses a FEN string and returns a Position. All six fields are
// required. On failure it returns nil and a *ParseError.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &ParseError{Field: FieldFEN, Value: strconv.Itoa(len(parts)) + " fields", Err: ErrFieldCount}
	}

	pos := NewPosition()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, &ParseError{Field: FieldSide, Value: parts[1], Err: ErrSideToMove}
	}

	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	pos.CastlingRights = cr

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, &ParseError{Field: FieldEnPassant, Value: parts[3], Err: ErrEnPassant}
		}
		pos.EnPassant = sq
	}

	hmc, ok := parseCounter(parts[4])
	if !ok {
		return nil, &ParseError{Field: FieldHalfmove, Value: parts[4], Err: ErrHalfmoveClock}
	}
	pos.HalfMoveClock = hmc

	fmn, ok := parseCounter(parts[5])
	if !ok || fmn < 1 {
		return nil, &ParseError{Field: FieldFullmove, Value: parts[5], Err: ErrFullmoveNumber}
	}
	pos.FullMoveNumber = fmn

	return pos, nil
}

// Decode is ParseFEN.
func Decode(fen string) (*Position, error) {
	return ParseFEN(fen)
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &ParseError{Field: FieldBoard, Value: placement, Err: ErrRankCount}
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return &ParseError{Field: FieldBoard, Value: rankStr, Err: ErrRankLength}
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return &ParseError{Field: FieldBoard, Value: string(c), Err: ErrPieceChar}
			}
			if err := pos.Place(piece.Color(), piece.Type(), NewSquare(file, rank)); err != nil {
				return &ParseError{Field: FieldBoard, Value: rankStr, Err: err}
			}
			file++
		}

		if file != 8 {
			return &ParseError{Field: FieldBoard, Value: rankStr, Err: ErrRankLength}
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}

	cr := NoCastling
	for i := 0; i < len(castling); i++ {
		var flag CastlingRights
		for _, f := range castlingFlags {
			if f.char == castling[i] {
				flag = f.flag
				break
			}
		}
		if flag == NoCastling || cr&flag != 0 {
			return NoCastling, &ParseError{Field: FieldCastling, Value: castling, Err: ErrCastling}
		}
		cr |= flag
	}
	return cr, nil
}

// MaxCounter is the largest halfmove clock or fullmove number a Position
// accepts. Both counters are stored as uint32 in the binary encoding.
const MaxCounter = math.MaxUint32

// parseCounter accepts only plain decimal digits no greater than MaxCounter.
func parseCounter(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// Encode returns the FEN representation of p.
func Encode(p *Position) string {
	return p.FEN()
}

// FEN returns the FEN representation of the position. Ranks are emitted from
// rank 8 (squares 56-63) down to rank 1 (squares 0-7).
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler using FEN.
func (p *Position) MarshalText() ([]byte, error) {
	return []byte(p.FEN()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using FEN.
func (p *Position) UnmarshalText(text []byte) error {
	pos, err := ParseFEN(string(text))
	if err != nil {
		return err
	}
	*p = *pos
	return nil
}

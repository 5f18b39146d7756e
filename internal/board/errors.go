package board

import (
	"errors"
	"fmt"
)

var (
	ErrFieldCount       = errors.New("FEN must have exactly 6 fields")
	ErrRankCount        = errors.New("board field must have 8 ranks")
	ErrRankLength       = errors.New("rank must describe exactly 8 files")
	ErrPieceChar        = errors.New("invalid piece character")
	ErrSideToMove       = errors.New("side to move must be w or b")
	ErrCastling         = errors.New("invalid castling rights")
	ErrEnPassant        = errors.New("invalid en passant square")
	ErrHalfmoveClock    = errors.New("halfmove clock must be a non-negative integer")
	ErrFullmoveNumber   = errors.New("fullmove number must be a positive integer")
	ErrSquareOccupied   = errors.New("square already occupied")
	ErrSquareOutOfRange = errors.New("square out of range")
	ErrInvalidPiece     = errors.New("invalid color or piece type")
)

// ParseError reports a FEN string that does not conform to the grammar.
type ParseError struct {
	Field string // board, side, castling, en-passant, halfmove, fullmove or fen
	Value string // offending token
	Err   error
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("fen: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("fen: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvariantViolation reports an attempt to place a piece on a square that is
// already occupied. Decode surfaces it wrapped in a ParseError.
type InvariantViolation struct {
	Square   Square
	Existing Piece
	Incoming Piece
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%v: %s holds %s, cannot place %s", ErrSquareOccupied, e.Square, e.Existing, e.Incoming)
}

func (e *InvariantViolation) Unwrap() error { return ErrSquareOccupied }

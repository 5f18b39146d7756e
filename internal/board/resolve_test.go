package board

import (
	"errors"
	"testing"
)

// TestDisjointness checks that no square is claimed by two (color, type)
// pairs in any decoded position.
func TestDisjointness(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if err := pos.Validate(); err != nil {
			t.Errorf("%q: %v", fen, err)
		}
		for sq := A1; sq <= H8; sq++ {
			owners := 0
			for c := White; c <= Black; c++ {
				for _, pt := range PieceTypes {
					if pos.Pieces(c, pt).IsSet(sq) {
						owners++
					}
				}
			}
			if owners > 1 {
				t.Errorf("%q: %s has %d owners", fen, sq, owners)
			}
		}
	}
}

// TestResolveCoverage checks that every square resolves to exactly the
// bitboard that holds it, or to empty.
func TestResolveCoverage(t *testing.T) {
	for _, fen := range testFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		for sq := A1; sq <= H8; sq++ {
			c, pt, err := Resolve(pos, sq)
			if err != nil {
				t.Fatalf("Resolve(%s): %v", sq, err)
			}
			if pt == None {
				if c != NoColor || !pos.IsEmpty(sq) {
					t.Errorf("%q: %s resolved empty but is occupied", fen, sq)
				}
				continue
			}
			if !pos.Pieces(c, pt).IsSet(sq) {
				t.Errorf("%q: %s resolved to %s %s not set in bitboard", fen, sq, c, pt)
			}
			if pos.Occupied(c.Other()).IsSet(sq) {
				t.Errorf("%q: %s also occupied by %s", fen, sq, c.Other())
			}
		}
	}
}

func TestResolveOutOfRange(t *testing.T) {
	pos := StartPosition()
	for _, sq := range []Square{NoSquare, 65, 200, 255} {
		c, pt, err := pos.Resolve(sq)
		if !errors.Is(err, ErrSquareOutOfRange) {
			t.Errorf("Resolve(%d) err = %v, want ErrSquareOutOfRange", sq, err)
		}
		if c != NoColor || pt != None {
			t.Errorf("Resolve(%d) = %s %s, want empty", sq, c, pt)
		}
		if got := pos.PieceAt(sq); got != NoPiece {
			t.Errorf("PieceAt(%d) = %s, want NoPiece", sq, got)
		}
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	pos := StartPosition()
	before := *pos
	for sq := A1; sq <= H8; sq++ {
		pos.Resolve(sq)
	}
	if *pos != before {
		t.Error("Resolve modified the position")
	}
}

func TestPieceAt(t *testing.T) {
	pos := StartPosition()
	tests := []struct {
		sq   Square
		want Piece
	}{
		{A1, WhiteRook},
		{B1, WhiteKnight},
		{C1, WhiteBishop},
		{D1, WhiteQueen},
		{E1, WhiteKing},
		{E2, WhitePawn},
		{E4, NoPiece},
		{E7, BlackPawn},
		{E8, BlackKing},
		{H8, BlackRook},
	}
	for _, tc := range tests {
		if got := pos.PieceAt(tc.sq); got != tc.want {
			t.Errorf("PieceAt(%s) = %q, want %q", tc.sq, got, tc.want)
		}
	}
}

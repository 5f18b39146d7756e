package board

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPosition(t *testing.T) {
	pos := NewPosition()
	if pos.AllOccupied() != Empty {
		t.Errorf("new position has pieces:\n%s", pos.AllOccupied())
	}
	if pos.SideToMove != White || pos.CastlingRights != NoCastling || pos.EnPassant != NoSquare {
		t.Errorf("unexpected state: %+v", pos)
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("counters = %d/%d, want 0/1", pos.HalfMoveClock, pos.FullMoveNumber)
	}
	if err := pos.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if got := pos.FEN(); got != EmptyFEN {
		t.Errorf("FEN = %q, want %q", got, EmptyFEN)
	}
}

func TestPlaceAndRemove(t *testing.T) {
	pos := NewPosition()
	if err := pos.Place(Black, Queen, D4); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if pos.PieceAt(D4) != BlackQueen {
		t.Fatalf("PieceAt(d4) = %s", pos.PieceAt(D4))
	}

	err := pos.Place(White, Pawn, D4)
	var iv *InvariantViolation
	if !errors.As(err, &iv) {
		t.Fatalf("Place on occupied square: err = %v", err)
	}
	if iv.Existing != BlackQueen || iv.Incoming != WhitePawn {
		t.Errorf("violation = %+v", iv)
	}
	if pos.Pieces(White, Pawn) != Empty {
		t.Error("failed Place left a white pawn behind")
	}

	if err := pos.Place(White, None, A1); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("Place(None) err = %v", err)
	}
	if err := pos.Place(NoColor, Pawn, A1); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("Place(NoColor) err = %v", err)
	}
	if err := pos.Place(White, Pawn, NoSquare); !errors.Is(err, ErrSquareOutOfRange) {
		t.Errorf("Place(NoSquare) err = %v", err)
	}

	if got := pos.Remove(D4); got != BlackQueen {
		t.Errorf("Remove(d4) = %s", got)
	}
	if got := pos.Remove(D4); got != NoPiece {
		t.Errorf("second Remove(d4) = %s", got)
	}
	if *pos != *NewPosition() {
		t.Error("position not empty after Remove")
	}
}

func TestPositionIsValue(t *testing.T) {
	a := StartPosition()
	b := a.Copy()
	if *a != *b {
		t.Fatal("copy differs from original")
	}
	b.Remove(E1)
	if a.PieceAt(E1) != WhiteKing {
		t.Error("mutating the copy changed the original")
	}
	if *a == *b {
		t.Error("positions with different placement compare equal")
	}
}

func TestSideAccessors(t *testing.T) {
	pos := StartPosition()
	white := pos.Side(White)
	if white.BB(None) != Empty || white.BB(NumPieceTypes) != Empty {
		t.Error("reserved piece type slots are not empty")
	}
	if white.Count(Pawn) != 8 || white.Count(King) != 1 {
		t.Errorf("counts: pawns %d kings %d", white.Count(Pawn), white.Count(King))
	}
	if white.Type(E1) != King || white.Type(E8) != None {
		t.Errorf("Type: e1=%s e8=%s", white.Type(E1), white.Type(E8))
	}
	if (pos.Side(NoColor) != Side{}) {
		t.Error("Side(NoColor) is not empty")
	}
	if err := white.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	var broken Side
	broken.set(Pawn, A2)
	broken.set(Rook, A2)
	if err := broken.Validate(); err == nil {
		t.Error("Validate accepted overlapping bitboards")
	}
}

func TestCounts(t *testing.T) {
	counts := StartPosition().Counts()
	want := [NumPieceTypes]int{None: 16, Pawn: 8, Rook: 2, Knight: 2, Bishop: 2, Queen: 1, King: 1}
	for c := White; c <= Black; c++ {
		if counts[c] != want {
			t.Errorf("%s counts = %v, want %v", c, counts[c], want)
		}
	}
}

func TestValidateRejectsBadState(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Position)
		want   string
	}{
		{"overlap", func(p *Position) { p.sides[Black].set(Pawn, E1) }, "occupied"},
		{"side", func(p *Position) { p.SideToMove = NoColor }, "side to move"},
		{"castling", func(p *Position) { p.CastlingRights = 0x30 }, "castling"},
		{"en passant", func(p *Position) { p.EnPassant = 70 }, "en passant"},
		{"halfmove", func(p *Position) { p.HalfMoveClock = -1 }, "halfmove"},
		{"fullmove", func(p *Position) { p.FullMoveNumber = 0 }, "fullmove"},
		{"halfmove too large", func(p *Position) { p.HalfMoveClock = MaxCounter + 1 }, "halfmove"},
		{"fullmove too large", func(p *Position) { p.FullMoveNumber = MaxCounter + 1 }, "fullmove"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := StartPosition()
			tc.mutate(pos)
			err := pos.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate = %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestMirror(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K2R w Kq d6 3 20")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := pos.Mirror()
	if got, want := m.FEN(), "4k2r/8/8/8/3Pp3/8/8/4K3 b Qk d3 3 20"; got != want {
		t.Errorf("Mirror = %q, want %q", got, want)
	}
	if back := m.Mirror(); *back != *pos {
		t.Errorf("double mirror = %q, want %q", back.FEN(), pos.FEN())
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestCastlingRights(t *testing.T) {
	tests := []struct {
		cr   CastlingRights
		want string
	}{
		{NoCastling, "-"},
		{AllCastling, "KQkq"},
		{WhiteKingSideCastle | BlackQueenSideCastle, "Kq"},
		{BlackKingSideCastle, "k"},
	}
	for _, tc := range tests {
		if got := tc.cr.String(); got != tc.want {
			t.Errorf("%#x.String() = %q, want %q", uint8(tc.cr), got, tc.want)
		}
	}
	cr := WhiteQueenSideCastle | BlackKingSideCastle
	if cr.CanCastle(White, true) || !cr.CanCastle(White, false) || !cr.CanCastle(Black, true) || cr.CanCastle(Black, false) {
		t.Errorf("CanCastle wrong for %s", cr)
	}
}

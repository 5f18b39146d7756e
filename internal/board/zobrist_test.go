package board

import "testing"

func TestHash(t *testing.T) {
	start := StartPosition()
	if start.Hash() != StartPosition().Hash() {
		t.Fatal("hash is not deterministic")
	}

	seen := make(map[uint64]string)
	for _, fen := range testFENs {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		h := pos.Hash()
		if other, ok := seen[h]; ok {
			t.Errorf("%q and %q share hash %016x", fen, other, h)
		}
		seen[h] = fen
	}

	clocks := start.Copy()
	clocks.HalfMoveClock, clocks.FullMoveNumber = 7, 30
	if clocks.Hash() != start.Hash() {
		t.Error("move counters changed the hash")
	}

	black := start.Copy()
	black.SideToMove = Black
	if black.Hash() == start.Hash() {
		t.Error("side to move not hashed")
	}

	noCastle := start.Copy()
	noCastle.CastlingRights = NoCastling
	if noCastle.Hash() == start.Hash() {
		t.Error("castling rights not hashed")
	}
}

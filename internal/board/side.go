package board

import "fmt"

// Side holds one color's pieces as one bitboard per piece type. Slot None is
// reserved and always empty so the array can be indexed by PieceType.
type Side struct {
	bb  [NumPieceTypes]Bitboard
	all Bitboard
}

// BB returns the bitboard for the given piece type. None and out-of-range
// types yield Empty.
func (s Side) BB(pt PieceType) Bitboard {
	if !pt.IsValid() {
		return Empty
	}
	return s.bb[pt]
}

// All returns the union of the side's piece bitboards.
func (s Side) All() Bitboard {
	return s.all
}

// Count returns the number of pieces of the given type.
func (s Side) Count(pt PieceType) int {
	return s.BB(pt).PopCount()
}

// Type returns the piece type occupying sq, scanning in ResolveOrder, or
// None when the side has nothing there.
func (s Side) Type(sq Square) PieceType {
	bb := SquareBB(sq)
	if s.all&bb == 0 {
		return None
	}
	for _, pt := range ResolveOrder {
		if s.bb[pt]&bb != 0 {
			return pt
		}
	}
	return None
}

func (s *Side) set(pt PieceType, sq Square) {
	bb := SquareBB(sq)
	s.bb[pt] |= bb
	s.all |= bb
}

func (s *Side) clear(sq Square) {
	bb := SquareBB(sq)
	for _, pt := range PieceTypes {
		s.bb[pt] &^= bb
	}
	s.all &^= bb
}

// Validate checks that the piece bitboards are pairwise disjoint and that the
// cached union matches them.
func (s Side) Validate() error {
	if s.bb[None] != Empty {
		return fmt.Errorf("reserved slot is not empty: %#x", uint64(s.bb[None]))
	}
	var seen Bitboard
	for _, pt := range PieceTypes {
		if overlap := seen & s.bb[pt]; overlap != 0 {
			return fmt.Errorf("%s overlaps another piece type on %s", pt, overlap.LSB())
		}
		seen |= s.bb[pt]
	}
	if seen != s.all {
		return fmt.Errorf("occupancy %#x does not match pieces %#x", uint64(s.all), uint64(seen))
	}
	return nil
}

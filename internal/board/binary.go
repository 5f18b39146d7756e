package board

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// BinarySize is the length of a Position's binary encoding: twelve piece
// bitboards (white pawn..king, then black pawn..king), then side to move,
// castling rights, en passant square, halfmove clock and fullmove number.
const BinarySize = 12*8 + 3 + 4 + 4

var (
	errBinarySize   = errors.New("invalid number of bytes for position")
	errCounterRange = errors.New("move counter out of encodable range")
)

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (p *Position) MarshalBinary() ([]byte, error) {
	if p.HalfMoveClock < 0 || p.HalfMoveClock > MaxCounter {
		return nil, fmt.Errorf("%w: %d", errCounterRange, p.HalfMoveClock)
	}
	if p.FullMoveNumber < 1 || p.FullMoveNumber > MaxCounter {
		return nil, fmt.Errorf("%w: %d", errCounterRange, p.FullMoveNumber)
	}
	data := make([]byte, 0, BinarySize)
	for c := White; c <= Black; c++ {
		for _, pt := range PieceTypes {
			data = binary.BigEndian.AppendUint64(data, uint64(p.sides[c].bb[pt]))
		}
	}
	data = append(data, byte(p.SideToMove), byte(p.CastlingRights), byte(p.EnPassant))
	data = binary.BigEndian.AppendUint32(data, uint32(p.HalfMoveClock))
	data = binary.BigEndian.AppendUint32(data, uint32(p.FullMoveNumber))
	return data, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// decoded position must satisfy Validate; p is left untouched otherwise.
func (p *Position) UnmarshalBinary(data []byte) error {
	if len(data) != BinarySize {
		return fmt.Errorf("%w: got %d, want %d", errBinarySize, len(data), BinarySize)
	}

	var pos Position
	off := 0
	for c := White; c <= Black; c++ {
		side := &pos.sides[c]
		for _, pt := range PieceTypes {
			side.bb[pt] = Bitboard(binary.BigEndian.Uint64(data[off : off+8]))
			side.all |= side.bb[pt]
			off += 8
		}
	}
	pos.SideToMove = Color(data[off])
	pos.CastlingRights = CastlingRights(data[off+1])
	pos.EnPassant = Square(data[off+2])
	off += 3
	pos.HalfMoveClock = int(binary.BigEndian.Uint32(data[off : off+4]))
	pos.FullMoveNumber = int(binary.BigEndian.Uint32(data[off+4 : off+8]))

	if err := pos.Validate(); err != nil {
		return fmt.Errorf("decode position: %w", err)
	}
	*p = pos
	return nil
}

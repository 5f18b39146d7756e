package board

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [NumColors][NumPieceTypes][NumSquares]uint64 // slot None stays zero
	zobristEnPassant  [8]uint64                                    // One per file
	zobristCastling   [16]uint64                                   // All 16 castling combinations
	zobristSideToMove uint64                                       // XOR when black to move
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for _, pt := range PieceTypes {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// Hash computes the Zobrist hash of the position's placement, side to move,
// castling rights and en passant file. The move counters are not included,
// so positions that differ only in clocks share a hash.
func (p *Position) Hash() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for _, pt := range PieceTypes {
			bb := p.sides[c].bb[pt]
			for bb != 0 {
				hash ^= zobristPiece[c][pt][bb.PopLSB()]
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastling[p.CastlingRights&AllCastling]

	if p.EnPassant.IsValid() {
		hash ^= zobristEnPassant[p.EnPassant.File()]
	}

	return hash
}

package board

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [4][64]uint64 // [Piece][Square]
	zobristSideToMove uint64        // XOR when black to move
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
	rng := newPRNG(0x98F107A2BEEF1234) // Fixed seed

	for piece := RedMan; piece < NoPiece; piece++ {
		for sq := A1; sq <= H8; sq++ {
			zobristPiece[piece][sq] = rng.next()
		}
	}

	zobristSideToMove = rng.next()
}

// Hash returns the Zobrist hash of the position. Positions with the same
// pieces and side to move hash equal.
func (p *Position) Hash() uint64 {
	var hash uint64

	for sq, piece := range p.squares {
		if piece != NoPiece {
			hash ^= zobristPiece[piece][sq]
		}
	}

	if p.sideToMove == Black {
		hash ^= zobristSideToMove
	}

	return hash
}

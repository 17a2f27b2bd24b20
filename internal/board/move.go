package board

import "fmt"

// Move is a request to move the piece on From to To. A move that spans
// two squares diagonally is a capture of the piece in between.
type Move struct {
	From Square
	To   Square
}

// NoMove represents an invalid or null move.
var NoMove = Move{From: NoSquare, To: NoSquare}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// ParseMove parses a move given as two squares in algebraic notation.
// Malformed notation returns ErrFormat or ErrRange; it says nothing about
// whether the move is legal.
func ParseMove(from, to string) (Move, error) {
	fromSq, err := ParseSquare(from)
	if err != nil {
		return NoMove, fmt.Errorf("invalid from square: %w", err)
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return NoMove, fmt.Errorf("invalid to square: %w", err)
	}
	return NewMove(fromSq, toSq), nil
}

// String returns the move as "from to", e.g. "a3 b4".
func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

// IsCapture returns true if the move jumps two squares.
func (m Move) IsCapture() bool {
	return abs(m.To.File()-m.From.File()) == 2
}

// Rejection explains why a well-formed move is illegal.
// The zero value, Accepted, means the move is legal.
type Rejection uint8

const (
	Accepted Rejection = iota
	RejectOffBoard
	RejectEmptySource
	RejectOccupiedTarget
	RejectNotYourPiece
	RejectNotDiagonal
	RejectBadDistance
	RejectNothingToCapture
	RejectWrongDirection
)

var rejectionText = [...]string{
	Accepted:               "accepted",
	RejectOffBoard:         "square is off the board",
	RejectEmptySource:      "no piece on the from square",
	RejectOccupiedTarget:   "the to square is occupied",
	RejectNotYourPiece:     "that piece belongs to the other side",
	RejectNotDiagonal:      "pieces move diagonally",
	RejectBadDistance:      "a move must be one or two squares",
	RejectNothingToCapture: "a jump must capture an opposing piece",
	RejectWrongDirection:   "men only move forward",
}

// String returns a short human-readable reason.
func (r Rejection) String() string {
	if int(r) < len(rejectionText) {
		return rejectionText[r]
	}
	return fmt.Sprintf("Rejection(%d)", uint8(r))
}

// plan carries what the checks learned about an accepted move.
type plan struct {
	captured Square // NoSquare unless the move is a jump
	promote  bool
}

// validate runs the legality checks in order and stops at the first failure.
func (p *Position) validate(m Move) (plan, Rejection) {
	pl := plan{captured: NoSquare}

	if !m.From.IsValid() || !m.To.IsValid() {
		return pl, RejectOffBoard
	}

	piece := p.squares[m.From]
	if piece == NoPiece {
		return pl, RejectEmptySource
	}
	if p.squares[m.To] != NoPiece {
		return pl, RejectOccupiedTarget
	}
	if piece.Color() != p.sideToMove {
		return pl, RejectNotYourPiece
	}

	df := m.To.File() - m.From.File()
	dr := m.To.Rank() - m.From.Rank()
	if abs(df) != abs(dr) {
		return pl, RejectNotDiagonal
	}

	switch abs(df) {
	case 1:
	case 2:
		pl.captured = NewSquare(m.From.File()+df/2, m.From.Rank()+dr/2)
	default:
		return pl, RejectBadDistance
	}

	if pl.captured != NoSquare && p.squares[pl.captured].Color() != p.sideToMove.Other() {
		return pl, RejectNothingToCapture
	}

	if piece.Type() == Man {
		forward := dr > 0
		if piece.Color() == Black {
			forward = dr < 0
		}
		if !forward {
			return pl, RejectWrongDirection
		}
		pl.promote = m.To.RelativeRank(piece.Color()) == 7
	}

	return pl, Accepted
}

// apply builds the successor position. The receiver is not modified.
func (p *Position) apply(m Move, pl plan) *Position {
	next := p.copy()

	piece := next.squares[m.From]
	if pl.promote {
		piece = piece.Crowned()
	}
	next.squares[m.To] = piece
	next.squares[m.From] = NoPiece
	if pl.captured != NoSquare {
		next.squares[pl.captured] = NoPiece
	}
	next.sideToMove = p.sideToMove.Other()

	return next
}

// Check reports whether the move is legal in this position without
// building the resulting position.
func (p *Position) Check(m Move) Rejection {
	_, r := p.validate(m)
	return r
}

// Play applies a move. It returns the new position and Accepted, or nil
// and the reason the move was rejected.
func (p *Position) Play(m Move) (*Position, Rejection) {
	pl, r := p.validate(m)
	if r != Accepted {
		return nil, r
	}
	return p.apply(m, pl), Accepted
}

// DoMove parses two squares in algebraic notation and plays the move.
//
// Malformed notation is a contract violation and returns an error. A
// well-formed but illegal move returns a nil position and the Rejection.
func (p *Position) DoMove(from, to string) (*Position, Rejection, error) {
	m, err := ParseMove(from, to)
	if err != nil {
		return nil, Accepted, err
	}
	next, r := p.Play(m)
	return next, r, nil
}

// stepOffsets are the (file, rank) displacements a piece can ever make.
var stepOffsets = [8][2]int{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{2, 2}, {-2, 2}, {2, -2}, {-2, -2},
}

// LegalMoves returns every legal move for the side to move, ordered by
// from square and then by to square.
func (p *Position) LegalMoves() []Move {
	var moves []Move

	for from := A1; from <= H8; from++ {
		if p.squares[from].Color() != p.sideToMove {
			continue
		}
		var targets [64]bool
		for _, off := range stepOffsets {
			file, rank := from.File()+off[0], from.Rank()+off[1]
			if !inRange(file) || !inRange(rank) {
				continue
			}
			to := NewSquare(file, rank)
			if p.Check(NewMove(from, to)) == Accepted {
				targets[to] = true
			}
		}
		for to := A1; to <= H8; to++ {
			if targets[to] {
				moves = append(moves, NewMove(from, to))
			}
		}
	}

	return moves
}

// HasLegalMoves returns true if the side to move can make any move.
func (p *Position) HasLegalMoves() bool {
	return len(p.LegalMoves()) > 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

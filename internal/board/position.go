package board

import "fmt"

// Position is a board plus the side to move.
//
// A Position is never modified after construction: moves return a new
// Position and leave the receiver intact, so a *Position may be shared
// between goroutines without locking.
type Position struct {
	squares    [64]Piece // indexed by Square, rank 1 first
	sideToMove Color
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, _ := ParsePosition(StartPosition)
	return pos
}

// emptyPosition returns a board with no pieces and Red to move.
func emptyPosition() *Position {
	p := &Position{sideToMove: Red}
	for i := range p.squares {
		p.squares[i] = NoPiece
	}
	return p
}

// copy returns a private copy for building a successor position.
func (p *Position) copy() *Position {
	newPos := *p
	return &newPos
}

// SideToMove returns the color whose turn it is.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.squares[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.PieceAt(sq) == NoPiece
}

// GetSquare returns the piece at (file, rank), both 0-indexed.
// Coordinates outside 0-7 return ErrRange.
func (p *Position) GetSquare(file, rank int) (Piece, error) {
	if !inRange(file) || !inRange(rank) {
		return NoPiece, fmt.Errorf("%w: square (%d, %d) is off the board", ErrRange, file, rank)
	}
	return p.squares[NewSquare(file, rank)], nil
}

// PieceCount returns the number of men and kings of the given color.
func (p *Position) PieceCount(c Color) (men, kings int, err error) {
	if c != Red && c != Black {
		return 0, 0, fmt.Errorf("%w: no pieces of color %v", ErrRange, c)
	}
	for _, piece := range p.squares {
		if piece.Color() != c {
			continue
		}
		if piece.Type() == King {
			kings++
		} else {
			men++
		}
	}
	return men, kings, nil
}

// material returns the total piece count for each color.
func (p *Position) material() (red, black int) {
	for _, piece := range p.squares {
		switch piece.Color() {
		case Red:
			red++
		case Black:
			black++
		}
	}
	return red, black
}

// IsTerminal returns true once either side has no pieces left.
// A side that still has pieces but no legal move does not end the game.
func (p *Position) IsTerminal() bool {
	red, black := p.material()
	return red == 0 || black == 0
}

// Winner returns the side that still has pieces in a terminal position,
// or NoColor while the game is running. An empty board has no winner.
func (p *Position) Winner() Color {
	red, black := p.material()
	switch {
	case red > 0 && black == 0:
		return Red
	case black > 0 && red == 0:
		return Black
	default:
		return NoColor
	}
}

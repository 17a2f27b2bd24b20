package board

import (
	"fmt"
	"strings"
)

// StartPosition is the serialized starting position: red to move, red men
// on the dark squares of ranks 1-3, black men on ranks 6-8.
const StartPosition = "r .b.b.b.b b.b.b.b. .b.b.b.b ........ ........ r.r.r.r. .r.r.r.r r.r.r.r."

// ParsePosition parses a serialized position and returns a Position.
//
// The format is nine tokens separated by single spaces: the side to move
// ('r' or 'b') followed by eight rows from rank 8 down to rank 1, each eight
// characters from "rRbB.".
func ParsePosition(s string) (*Position, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 9 {
		return nil, fmt.Errorf("%w: need 9 tokens, got %d", ErrFormat, len(parts))
	}

	pos := emptyPosition()

	// Parse side to move (token 0)
	switch parts[0] {
	case "r":
		pos.sideToMove = Red
	case "b":
		pos.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrFormat, parts[0])
	}

	// Parse rows (tokens 1-8)
	for i, row := range parts[1:] {
		rank := 7 - i // rows start from rank 8
		if len(row) != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d squares, want 8", ErrFormat, rank+1, len(row))
		}
		for file := 0; file < 8; file++ {
			piece, ok := PieceFromChar(row[file])
			if !ok {
				return nil, fmt.Errorf("%w: invalid piece character %q in rank %d", ErrFormat, row[file], rank+1)
			}
			pos.squares[NewSquare(file, rank)] = piece
		}
	}

	return pos, nil
}

// String returns the serialized form of the position, the exact inverse
// of ParsePosition.
func (p *Position) String() string {
	var sb strings.Builder
	sb.Grow(9 * 9)

	sb.WriteByte(p.sideToMove.Char())
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteByte(p.squares[NewSquare(file, rank)].Char())
		}
	}

	return sb.String()
}

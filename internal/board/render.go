package board

import "strings"

const (
	rowDivider = "+---+---+---+---+---+---+---+---+"
	fileLegend = "+-a-+-b-+-c-+-d-+-e-+-f-+-g-+-h-+"
	emptyCell  = "   |"
)

// Render returns a text diagram of the board, rank 8 at the top.
//
//	+---+---+---+---+---+---+---+---+
//	8   | b |   | b |   | b |   | b |
//	...
//	+-a-+-b-+-c-+-d-+-e-+-f-+-g-+-h-+
func (p *Position) Render() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(rowDivider)
		sb.WriteByte('\n')
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < 8; file++ {
			piece := p.squares[NewSquare(file, rank)]
			if piece == NoPiece {
				sb.WriteString(emptyCell)
				continue
			}
			sb.WriteByte(' ')
			sb.WriteByte(piece.Char())
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(fileLegend)

	return sb.String()
}

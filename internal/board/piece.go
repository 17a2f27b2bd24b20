package board

import "fmt"

// Color represents the color of a piece or player.
type Color uint8

const (
	Red Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name as the collaborator prints it.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Char returns the side-to-move token used in serialized positions.
func (c Color) Char() byte {
	switch c {
	case Red:
		return 'r'
	case Black:
		return 'b'
	default:
		return '-'
	}
}

// ParseColor accepts "r"/"b" or "red"/"black".
func ParseColor(s string) (Color, error) {
	switch s {
	case "r", "red":
		return Red, nil
	case "b", "black":
		return Black, nil
	default:
		return NoColor, fmt.Errorf("%w: color %q", ErrRange, s)
	}
}

// PieceType is either a man or a king.
type PieceType uint8

const (
	Man PieceType = iota
	King
	NoPieceType PieceType = 2
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Man:
		return "Man"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece combines PieceType and Color into a single value.
// Encoded as: pieceType + color*2
type Piece uint8

const (
	RedMan    Piece = Piece(Man) + Piece(Red)*2
	RedKing   Piece = Piece(King) + Piece(Red)*2
	BlackMan  Piece = Piece(Man) + Piece(Black)*2
	BlackKing Piece = Piece(King) + Piece(Black)*2
	NoPiece   Piece = 4
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*2
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 2)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 2)
}

// Crowned returns the king of the same color. Kings and NoPiece are unchanged.
func (p Piece) Crowned() Piece {
	if p >= NoPiece {
		return NoPiece
	}
	return NewPiece(King, p.Color())
}

// Char returns the serialized character: lowercase for men,
// uppercase for kings, '.' for an empty square.
func (p Piece) Char() byte {
	if p >= NoPiece {
		return '.'
	}
	return "rRbB"[p]
}

// String returns the serialized character for the piece.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar converts a serialized character to a Piece.
// The second result is false for characters outside "rRbB.".
func PieceFromChar(c byte) (Piece, bool) {
	switch c {
	case 'r':
		return RedMan, true
	case 'R':
		return RedKing, true
	case 'b':
		return BlackMan, true
	case 'B':
		return BlackKing, true
	case '.':
		return NoPiece, true
	default:
		return NoPiece, false
	}
}

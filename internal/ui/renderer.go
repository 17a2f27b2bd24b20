package ui

import (
	"image/color"

	"github.com/hailam/draughts/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	TargetColor    color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	LabelColor     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{238, 224, 196, 255}, // Cream
		DarkSquare:     color.RGBA{60, 110, 70, 255},   // Green
		SelectedSquare: color.RGBA{247, 247, 105, 150}, // Yellow highlight
		TargetColor:    color.RGBA{240, 240, 240, 170}, // Pale dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		Background:     color.RGBA{40, 44, 52, 255}, // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255},
		LabelColor:     color.RGBA{120, 120, 120, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// DrawBoard draws the board squares and coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	screen.Fill(r.theme.Background)

	size := float32(r.squareSize)
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := r.SquareToScreen(sq)

		c := r.theme.LightSquare
		if sq.IsDark() {
			c = r.theme.DarkSquare
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
	}

	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters and rank numbers inside the edge squares.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	for i := 0; i < 8; i++ {
		file := string(rune('a' + i))
		fx, _ := r.SquareToScreen(board.NewSquare(i, 0))
		drawText(screen, file, regularFace, float64(fx+r.squareSize-10), float64(r.boardSize-16), r.theme.LabelColor)

		rank := string(rune('1' + i))
		_, ry := r.SquareToScreen(board.NewSquare(0, i))
		drawText(screen, rank, regularFace, 3, float64(ry+2), r.theme.LabelColor)
	}
}

// DrawHighlights draws the last move, the selected square and its targets.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets []board.Move, lastMove board.Move) {
	if lastMove != board.NoMove {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, m := range targets {
		r.drawTargetIndicator(screen, m.To)
	}
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := float32(r.squareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// drawTargetIndicator draws a circle on a square the selected piece can reach.
func (r *Renderer) drawTargetIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	half := float32(r.squareSize) / 2
	radius := float32(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, float32(x)+half, float32(y)+half, radius, r.theme.TargetColor, true)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pos *board.Position) {
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sq)
		r.sprites.DrawPieceAt(screen, piece, x, y)
	}
}

// DrawStatus draws a line of text in the bar below the board.
func (r *Renderer) DrawStatus(screen *ebiten.Image, msg string) {
	drawText(screen, msg, boldFace, 12, float64(r.boardSize+10), r.theme.TextColor)
}

// SquareToScreen converts a board square to screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	x := sq.File() * r.squareSize
	y := (7 - sq.Rank()) * r.squareSize // Flip so rank 1 is at bottom
	return x, y
}

// ScreenToSquare converts screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - (y / r.squareSize) // Flip so rank 1 is at bottom
	return board.NewSquare(file, rank)
}

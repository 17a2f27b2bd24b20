package ui

import (
	"fmt"

	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/session"
	"github.com/hajimehoshi/ebiten/v2"
)

// UI Constants
const (
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	StatusHeight = 40
	ScreenWidth  = BoardSize
	ScreenHeight = BoardSize + StatusHeight
)

// Game implements ebiten.Game interface.
type Game struct {
	game *session.Session

	// UI state
	selectedSquare board.Square
	targets        []board.Move
	lastMove       board.Move
	message        string

	// Components
	renderer *Renderer
	input    *InputHandler
}

// NewGame creates the board UI around a session.
func NewGame(game *session.Session) *Game {
	return &Game{
		game:           game,
		selectedSquare: board.NoSquare,
		lastMove:       board.NoMove,
		renderer:       NewRenderer(BoardSize, SquareSize),
		input:          NewInputHandler(),
	}
}

// Update handles one frame of input.
func (g *Game) Update() error {
	g.input.Update()

	if IsKeyJustPressed(ebiten.KeyN) {
		g.game.Restart()
		g.clearSelection()
		g.lastMove = board.NoMove
		g.message = ""
		return nil
	}

	if g.game.Position().IsTerminal() || !g.input.IsLeftJustPressed() {
		return nil
	}

	g.handleClick(g.renderer.ScreenToSquare(g.input.MousePosition()))
	return nil
}

// handleClick selects one of the mover's pieces, or moves the selected
// piece to the clicked square.
func (g *Game) handleClick(sq board.Square) {
	pos := g.game.Position()

	if sq == board.NoSquare {
		g.clearSelection()
		return
	}

	if pos.PieceAt(sq).Color() == pos.SideToMove() {
		g.selectedSquare = sq
		g.targets = g.game.Targets(sq)
		g.message = ""
		return
	}

	if g.selectedSquare == board.NoSquare {
		return
	}

	m := board.NewMove(g.selectedSquare, sq)
	if r := g.game.Play(m); r != board.Accepted {
		g.message = "Invalid move: " + r.String()
		return
	}
	g.lastMove = m
	g.message = ""
	g.clearSelection()
}

func (g *Game) clearSelection() {
	g.selectedSquare = board.NoSquare
	g.targets = nil
}

// status returns the text for the bar under the board.
func (g *Game) status() string {
	pos := g.game.Position()
	if pos.IsTerminal() {
		if w := pos.Winner(); w != board.NoColor {
			return fmt.Sprintf("Game over: %s wins. Press N for a new game.", w)
		}
		return "Game over. Press N for a new game."
	}
	if g.message != "" {
		return g.message
	}
	return fmt.Sprintf("%s to move", pos.SideToMove())
}

// Draw renders the board, highlights, pieces and status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, g.selectedSquare, g.targets, g.lastMove)
	g.renderer.DrawPieces(screen, g.game.Position())
	g.renderer.DrawStatus(screen, g.status())
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

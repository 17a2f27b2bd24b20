// Package ui implements the draughts board UI using Ebitengine.
package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hailam/draughts/internal/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// pieceSVG is the shared disc artwork. The crown group is only kept for kings.
const pieceSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
<circle cx="50" cy="54" r="40" fill="%[2]s"/>
<circle cx="50" cy="48" r="40" fill="%[1]s" stroke="%[2]s" stroke-width="3"/>
<circle cx="50" cy="48" r="28" fill="none" stroke="%[2]s" stroke-width="2"/>
%[3]s
</svg>`

const crownSVG = `<path d="M30 58 L30 38 L40 48 L50 32 L60 48 L70 38 L70 58 Z" fill="%s" stroke="%s" stroke-width="2"/>`

// pieceColors maps each color to its face and edge fill.
var pieceColors = map[board.Color][2]string{
	board.Red:   {"#c8302c", "#6e1210"},
	board.Black: {"#2b2b2b", "#0a0a0a"},
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces()
	return sm
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// pieceDocument returns the SVG source for a piece.
func pieceDocument(p board.Piece) string {
	colors := pieceColors[p.Color()]
	crown := ""
	if p.Type() == board.King {
		crown = fmt.Sprintf(crownSVG, "#e8c547", colors[1])
	}
	return fmt.Sprintf(pieceSVG, colors[0], colors[1], crown)
}

// loadPieces rasterizes all piece sprites from their SVG sources.
func (sm *SpriteManager) loadPieces() {
	// Render at higher resolution for better quality when scaled
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, piece := range []board.Piece{board.RedMan, board.RedKing, board.BlackMan, board.BlackKing} {
		icon, err := oksvg.ReadIconStream(strings.NewReader(pieceDocument(piece)))
		if err != nil {
			log.Printf("Failed to parse SVG for %v: %v", piece, err)
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		// Create RGBA image and render with anti-aliasing at high resolution
		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawPieceAt draws a piece at the given pixel coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	if p == board.NoPiece {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	// Use linear filtering for smooth scaling
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}

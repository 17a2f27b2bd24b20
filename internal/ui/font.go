package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Font faces for text rendering
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
)

const (
	defaultFontSize = 16.0
	labelFontSize   = 12.0
)

func init() {
	initFonts()
}

func initFonts() {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
		return
	}
	regularFace = &text.GoTextFace{
		Source: regularSource,
		Size:   labelFontSize,
	}

	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
		return
	}
	boldFace = &text.GoTextFace{
		Source: boldSource,
		Size:   defaultFontSize,
	}
}

// drawText draws s with its top-left corner at (x, y). Nothing is drawn
// if the face failed to load.
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

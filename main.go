// Draughts - an English draughts board built with Ebitengine
package main

import (
	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/config"
	"github.com/hailam/draughts/internal/log2"
	"github.com/hailam/draughts/internal/session"
	"github.com/hailam/draughts/internal/storage"
	"github.com/hailam/draughts/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log2.Configure("info")
		log.Warn().Err(err).Msg("ignoring invalid configuration")
		cfg = config.Default()
	} else {
		log2.Configure(cfg.LogLevel)
	}

	var opts []session.Option
	store, err := storage.NewStorage(cfg.DataDir)
	if err != nil {
		log.Warn().Err(err).Msg("failed to open storage, games will not be saved")
	} else {
		defer store.Close()
		opts = append(opts, session.WithStore(store, nil), session.WithAutosave(cfg.Autosave))
	}

	game := session.New(board.NewPosition(), opts...)
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Draughts")

	if err := ebiten.RunGame(ui.NewGame(game)); err != nil {
		log.Error().Err(err).Msg("game loop failed")
	}
}

// Command draughts plays English draughts in the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/config"
	"github.com/hailam/draughts/internal/log2"
	"github.com/hailam/draughts/internal/repl"
	"github.com/hailam/draughts/internal/session"
	"github.com/hailam/draughts/internal/storage"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("draughts failed")
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	cfg, err := config.Load()
	if err != nil {
		log2.Configure("info")
		log.Warn().Err(err).Msg("ignoring invalid configuration")
		cfg = config.Default()
	}

	return &cli.App{
		Name:      "draughts",
		Usage:     "Play English draughts (checkers) in the terminal",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory for saved games",
				Value: cfg.DataDir,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: cfg.LogLevel,
			},
		},
		Before: func(cCtx *cli.Context) error {
			log2.Configure(cCtx.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play a game, saving it as you go",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "position",
						Aliases: []string{"p"},
						Usage:   "start from a serialized position instead of the opening",
					},
					&cli.StringFlag{
						Name:    "resume",
						Aliases: []string{"r"},
						Usage:   "id of a saved game to continue",
					},
					&cli.BoolFlag{
						Name:  "no-save",
						Usage: "do not store the game",
					},
					&cli.BoolFlag{
						Name:  "autosave",
						Usage: "save after every move",
						Value: cfg.Autosave,
					},
				},
				Action: func(cCtx *cli.Context) error {
					return play(cCtx)
				},
			},
			{
				Name:      "show",
				Usage:     "render a serialized position",
				ArgsUsage: "POSITION",
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 1 {
						return fmt.Errorf("show takes exactly one quoted position")
					}
					pos, err := board.ParsePosition(cCtx.Args().First())
					if err != nil {
						return err
					}
					out := cCtx.App.Writer
					fmt.Fprintln(out, pos.Render())
					if pos.IsTerminal() {
						fmt.Fprintln(out, "Game over.")
					} else {
						fmt.Fprintf(out, "%s to move.\n", pos.SideToMove())
					}
					return nil
				},
			},
			{
				Name:  "games",
				Usage: "list saved games",
				Action: func(cCtx *cli.Context) error {
					return withStorage(cCtx, func(s *storage.Storage) error {
						games, err := s.ListGames()
						if err != nil {
							return err
						}
						out := cCtx.App.Writer
						if len(games) == 0 {
							fmt.Fprintln(out, "No saved games.")
							return nil
						}
						for _, g := range games {
							fmt.Fprintf(out, "%s  %-11s  %3d moves  %s\n",
								g.ID, g.Status, g.Moves, g.UpdatedAt.Format("2006-01-02 15:04"))
						}
						return nil
					})
				},
			},
			{
				Name:  "stats",
				Usage: "show results of finished games",
				Action: func(cCtx *cli.Context) error {
					return withStorage(cCtx, func(s *storage.Storage) error {
						stats, err := s.LoadStats()
						if err != nil {
							return err
						}
						out := cCtx.App.Writer
						fmt.Fprintf(out, "Games played: %d\n", stats.GamesPlayed)
						fmt.Fprintf(out, "Red wins:     %d\n", stats.RedWins)
						fmt.Fprintf(out, "Black wins:   %d\n", stats.BlackWins)
						fmt.Fprintf(out, "Abandoned:    %d\n", stats.Abandoned)
						fmt.Fprintf(out, "Red win rate: %.1f%%\n", stats.RedWinRate())
						return nil
					})
				},
			},
		},
	}
}

// play runs the interactive loop, optionally backed by storage.
func play(cCtx *cli.Context) error {
	if cCtx.IsSet("position") && cCtx.IsSet("resume") {
		return fmt.Errorf("--position and --resume cannot be combined")
	}

	pos := board.NewPosition()
	if cCtx.IsSet("position") {
		var err error
		pos, err = board.ParsePosition(cCtx.String("position"))
		if err != nil {
			return err
		}
	}

	if cCtx.Bool("no-save") {
		if cCtx.IsSet("resume") {
			return fmt.Errorf("--resume needs storage; drop --no-save")
		}
		return repl.New(cCtx.App.Reader, cCtx.App.Writer, session.New(pos)).Run()
	}

	return withStorage(cCtx, func(s *storage.Storage) error {
		var rec *storage.GameRecord
		if cCtx.IsSet("resume") {
			id, err := uuid.Parse(cCtx.String("resume"))
			if err != nil {
				return fmt.Errorf("invalid game id: %w", err)
			}
			rec, err = s.LoadGame(id)
			if err != nil {
				return err
			}
			if rec.Status.Finished() {
				return fmt.Errorf("game %s is over (%s)", id, rec.Status)
			}
			pos, err = rec.Board()
			if err != nil {
				return err
			}
			log.Info().Str("game", id.String()).Msg("resuming game")
		}

		game := session.New(pos,
			session.WithStore(s, rec),
			session.WithAutosave(cCtx.Bool("autosave")),
		)
		if err := repl.New(cCtx.App.Reader, cCtx.App.Writer, game).Run(); err != nil {
			return err
		}
		if rec := game.Record(); !rec.Status.Finished() {
			fmt.Fprintf(cCtx.App.Writer, "Saved as %s. Resume with: draughts play --resume %s\n", rec.ID, rec.ID)
		}
		return nil
	})
}

func withStorage(cCtx *cli.Context, fn func(*storage.Storage) error) error {
	s, err := storage.NewStorage(cCtx.String("data-dir"))
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Warn().Err(err).Msg("closing storage")
		}
	}()
	return fn(s)
}

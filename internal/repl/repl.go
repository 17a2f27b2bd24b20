// Package repl implements the interactive text loop for playing draughts.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/session"
	"github.com/rs/zerolog/log"
)

// REPL prompts for moves and prints the board after each one.
type REPL struct {
	in   *bufio.Scanner
	out  io.Writer
	game *session.Session
}

// New creates a loop reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, game *session.Session) *REPL {
	return &REPL{
		in:   bufio.NewScanner(in),
		out:  out,
		game: game,
	}
}

// Run plays until the game ends, the user quits or input runs out.
// An unfinished game is saved so it can be resumed.
func (r *REPL) Run() error {
	defer r.game.Close()

	for !r.game.Position().IsTerminal() {
		r.printPosition()
		fmt.Fprint(r.out, "What is the next move?   ")

		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		fmt.Fprintln(r.out)

		parts := strings.Fields(r.in.Text())
		if len(parts) == 0 {
			continue
		}

		switch {
		case len(parts) == 1 && parts[0] == "quit":
			fmt.Fprintln(r.out, "Game terminated by user.")
			return nil
		case len(parts) == 1 && parts[0] == "resign":
			loser := r.game.Position().SideToMove()
			fmt.Fprintf(r.out, "%s resigns. %s wins.\n", loser, r.game.Resign())
			return nil
		case len(parts) == 1 && parts[0] == "moves":
			r.handleMoves()
		case len(parts) == 1 && parts[0] == "new":
			r.game.Restart()
			fmt.Fprintln(r.out, "New game.")
		case len(parts) == 2:
			r.handleMove(parts[0], parts[1])
		default:
			fmt.Fprintln(r.out, "ERROR: Enter a move as two squares, e.g. \"a3 b4\", or one of: moves, new, resign, quit.")
		}
	}

	pos := r.game.Position()
	fmt.Fprintln(r.out, pos.Render())
	fmt.Fprintln(r.out)
	if winner := pos.Winner(); winner != board.NoColor {
		fmt.Fprintf(r.out, "GAME OVER! %s wins.\n", winner)
	} else {
		fmt.Fprintln(r.out, "GAME OVER!")
	}
	return nil
}

func (r *REPL) printPosition() {
	pos := r.game.Position()
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, pos.String())
	fmt.Fprintln(r.out, pos.Render())
	fmt.Fprintf(r.out, "%s to move.\n", pos.SideToMove())
	fmt.Fprintln(r.out)
}

// handleMove tries a move. Malformed squares and illegal moves are both
// reported as an invalid move and leave the position unchanged.
func (r *REPL) handleMove(from, to string) {
	rejection, err := r.game.DoMove(from, to)
	if err != nil {
		log.Debug().Err(err).Str("from", from).Str("to", to).Msg("malformed move")
		fmt.Fprintf(r.out, "ERROR: Invalid move: %v.\n", err)
		return
	}
	if rejection != board.Accepted {
		fmt.Fprintf(r.out, "ERROR: Invalid move: %s.\n", rejection)
	}
}

// handleMoves lists the legal moves for the side to move.
func (r *REPL) handleMoves() {
	pos := r.game.Position()
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		fmt.Fprintf(r.out, "%s has no legal moves.\n", pos.SideToMove())
		return
	}
	list := make([]string, len(moves))
	for i, m := range moves {
		list[i] = m.String()
	}
	fmt.Fprintf(r.out, "Legal moves: %s\n", strings.Join(list, ", "))
}

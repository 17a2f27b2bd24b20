package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/session"
	"github.com/hailam/draughts/internal/storage"
	"github.com/stretchr/testify/require"
)

// fakeStore records what the loop persisted.
type fakeStore struct {
	saved    []storage.GameRecord
	finished []storage.GameRecord
}

func (f *fakeStore) SaveGame(rec *storage.GameRecord) error {
	f.saved = append(f.saved, *rec)
	return nil
}

func (f *fakeStore) RecordResult(rec *storage.GameRecord) error {
	f.finished = append(f.finished, *rec)
	return nil
}

func run(t *testing.T, pos *board.Position, input string, opts ...session.Option) (*session.Session, string) {
	t.Helper()
	var out bytes.Buffer
	game := session.New(pos, opts...)
	require.NoError(t, New(strings.NewReader(input), &out, game).Run())
	return game, out.String()
}

func TestPlaysMoves(t *testing.T) {
	game, out := run(t, board.NewPosition(), "a3 b4\nf6 e5\nquit\n")

	require.Equal(t, board.Red, game.Position().SideToMove())
	require.Equal(t, board.RedMan, game.Position().PieceAt(board.B4))
	require.Equal(t, board.BlackMan, game.Position().PieceAt(board.E5))
	require.Contains(t, out, board.StartPosition)
	require.Contains(t, out, "red to move.")
	require.Contains(t, out, "black to move.")
	require.Contains(t, out, "Game terminated by user.")
}

func TestInvalidMovesDoNotChangeState(t *testing.T) {
	game, out := run(t, board.NewPosition(), "a3 a4\nz9 b4\na3\nb6 a5\nquit\n")

	require.Equal(t, board.StartPosition, game.Position().String())
	require.Equal(t, 3, strings.Count(out, "ERROR: Invalid move"))
	require.Contains(t, out, "pieces move diagonally")
	require.Contains(t, out, "ERROR: Enter a move as two squares")
}

func TestGameOver(t *testing.T) {
	pos, err := board.ParsePosition("r ........ ........ ........ ........ ...b.... ..r..... ........ ........")
	require.NoError(t, err)

	store := &fakeStore{}
	game, out := run(t, pos, "c3 e5\n", session.WithStore(store, nil))

	require.True(t, game.Position().IsTerminal())
	require.Contains(t, out, "GAME OVER! red wins.")
	require.Len(t, store.finished, 1)
	require.Equal(t, storage.StatusRedWon, store.finished[0].Status)
	require.Equal(t, 1, store.finished[0].Moves)
}

func TestListMoves(t *testing.T) {
	_, out := run(t, board.NewPosition(), "moves\nquit\n")
	require.Contains(t, out, "Legal moves: a3 b4, c3 b4, c3 d4, e3 d4, e3 f4, g3 f4, g3 h4")
}

func TestAutosaveAndQuit(t *testing.T) {
	store := &fakeStore{}
	game, _ := run(t, board.NewPosition(), "a3 b4\na3 a4\nquit\n", session.WithStore(store, nil))

	// One save for the accepted move, one on quit. The rejected move saves nothing.
	require.Len(t, store.saved, 2)
	require.Empty(t, store.finished)
	require.Equal(t, game.Position().String(), store.saved[1].Position)
	require.Equal(t, storage.StatusInProgress, store.saved[1].Status)
}

func TestAutosaveDisabled(t *testing.T) {
	store := &fakeStore{}
	run(t, board.NewPosition(), "a3 b4\n", session.WithStore(store, nil), session.WithAutosave(false))

	// End of input still saves once.
	require.Len(t, store.saved, 1)
}

func TestResign(t *testing.T) {
	store := &fakeStore{}
	_, out := run(t, board.NewPosition(), "a3 b4\nresign\n", session.WithStore(store, nil))

	require.Contains(t, out, "black resigns. red wins.")
	require.Len(t, store.finished, 1)
	require.Equal(t, storage.StatusRedWon, store.finished[0].Status)
}

func TestNewGameAbandonsCurrent(t *testing.T) {
	store := &fakeStore{}
	game, out := run(t, board.NewPosition(), "a3 b4\nnew\nquit\n", session.WithStore(store, nil))

	require.Contains(t, out, "New game.")
	require.Equal(t, board.StartPosition, game.Position().String())
	require.Len(t, store.finished, 1)
	require.Equal(t, storage.StatusAbandoned, store.finished[0].Status)
	require.NotEqual(t, store.finished[0].ID, game.Record().ID)
}

func TestResumeWithMemoryStorage(t *testing.T) {
	s, err := storage.NewMemoryStorage()
	require.NoError(t, err)
	defer s.Close()

	first, _ := run(t, board.NewPosition(), "a3 b4\nquit\n", session.WithStore(s, nil))
	id := first.Record().ID

	rec, err := s.LoadGame(id)
	require.NoError(t, err)
	pos, err := rec.Board()
	require.NoError(t, err)
	require.Equal(t, board.Black, pos.SideToMove())

	second, _ := run(t, pos, "b6 a5\nquit\n", session.WithStore(s, rec))
	require.Equal(t, id, second.Record().ID)

	rec, err = s.LoadGame(id)
	require.NoError(t, err)
	require.Equal(t, 2, rec.Moves)
	require.Equal(t, second.Position().String(), rec.Position)
}

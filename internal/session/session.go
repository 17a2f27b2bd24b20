// Package session holds the game a front end is playing and keeps its
// saved record in step with it.
package session

import (
	"github.com/hailam/draughts/internal/board"
	"github.com/hailam/draughts/internal/storage"
	"github.com/rs/zerolog/log"
)

// GameStore is the part of storage a session needs.
type GameStore interface {
	SaveGame(rec *storage.GameRecord) error
	RecordResult(rec *storage.GameRecord) error
}

// Session is the current position of one game plus its persistence.
// It is not safe for concurrent use; each front end drives its own.
type Session struct {
	position *board.Position

	// store is nil when saving is disabled.
	store    GameStore
	record   *storage.GameRecord
	autosave bool
}

// Option configures a Session.
type Option func(*Session)

// WithStore saves the game to store. rec may be nil to start a new record.
func WithStore(store GameStore, rec *storage.GameRecord) Option {
	return func(s *Session) {
		s.store = store
		s.record = rec
	}
}

// WithAutosave controls whether every accepted move is written to the store.
func WithAutosave(on bool) Option {
	return func(s *Session) {
		s.autosave = on
	}
}

// New starts a session at pos.
func New(pos *board.Position, opts ...Option) *Session {
	s := &Session{
		position: pos,
		autosave: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store != nil && s.record == nil {
		s.record = storage.NewGameRecord(pos)
	}
	return s
}

// Position returns the current position.
func (s *Session) Position() *board.Position {
	return s.position
}

// Record returns the saved-game record, or nil without a store.
func (s *Session) Record() *storage.GameRecord {
	return s.record
}

// Play applies m if it is legal. A move that ends the game records the result.
func (s *Session) Play(m board.Move) board.Rejection {
	next, r := s.position.Play(m)
	if r != board.Accepted {
		return r
	}
	s.advance(next)
	return board.Accepted
}

// DoMove is Play for algebraic notation. Malformed notation returns an error.
func (s *Session) DoMove(from, to string) (board.Rejection, error) {
	next, r, err := s.position.DoMove(from, to)
	if err != nil || next == nil {
		return r, err
	}
	s.advance(next)
	return board.Accepted, nil
}

func (s *Session) advance(next *board.Position) {
	s.position = next
	if s.record == nil || !s.record.Advance(next) {
		return
	}
	if s.record.Status.Finished() {
		s.finish()
		return
	}
	if s.autosave {
		s.Save()
	}
}

// Targets returns the legal moves starting on from.
func (s *Session) Targets(from board.Square) []board.Move {
	var moves []board.Move
	for _, m := range s.position.LegalMoves() {
		if m.From == from {
			moves = append(moves, m)
		}
	}
	return moves
}

// Resign ends the game in favour of the side not to move and returns the winner.
func (s *Session) Resign() board.Color {
	winner := s.position.SideToMove().Other()
	if s.record != nil && !s.record.Status.Finished() {
		if winner == board.Red {
			s.record.Status = storage.StatusRedWon
		} else {
			s.record.Status = storage.StatusBlackWon
		}
		s.finish()
	}
	return winner
}

// Restart abandons the current game if any move was made and starts a new
// one from the opening.
func (s *Session) Restart() {
	if s.record != nil && s.record.Moves > 0 && !s.record.Status.Finished() {
		s.record.Status = storage.StatusAbandoned
		s.finish()
	}
	s.position = board.NewPosition()
	if s.store != nil {
		s.record = storage.NewGameRecord(s.position)
	}
}

// Save writes the record now. Failures are logged, not returned, so that a
// broken store never interrupts play.
func (s *Session) Save() {
	if s.store == nil || s.record == nil {
		return
	}
	if err := s.store.SaveGame(s.record); err != nil {
		log.Error().Err(err).Str("game", s.record.ID.String()).Msg("failed to save game")
		return
	}
	log.Debug().Str("game", s.record.ID.String()).Msg("game saved")
}

// Close saves an unfinished game so it can be resumed.
func (s *Session) Close() {
	if s.record != nil && !s.record.Status.Finished() {
		s.Save()
	}
}

func (s *Session) finish() {
	if s.store == nil {
		return
	}
	if err := s.store.RecordResult(s.record); err != nil {
		log.Error().Err(err).Str("game", s.record.ID.String()).Msg("failed to record result")
	}
}

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/hailam/draughts/internal/board"
)

// Storage keys
const (
	keyStats   = "stats"
	gamePrefix = "game/"
)

// ErrGameNotFound is returned when no saved game has the requested id.
var ErrGameNotFound = errors.New("game not found")

// GameStatus represents how a saved game stands.
type GameStatus int

const (
	StatusInProgress GameStatus = iota
	StatusRedWon
	StatusBlackWon
	StatusAbandoned
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusRedWon:
		return "red won"
	case StatusBlackWon:
		return "black won"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Finished returns true once the game can no longer be resumed.
func (s GameStatus) Finished() bool {
	return s != StatusInProgress
}

// GameRecord is a saved game: the current position in serialized form
// plus bookkeeping. No move history is kept.
type GameRecord struct {
	ID        uuid.UUID  `json:"id"`
	Position  string     `json:"position"`
	Hash      uint64     `json:"hash"`
	Status    GameStatus `json:"status"`
	Moves     int        `json:"moves"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewGameRecord starts a record for a game beginning at pos.
func NewGameRecord(pos *board.Position) *GameRecord {
	now := time.Now()
	rec := &GameRecord{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	rec.setPosition(pos)
	return rec
}

// Board parses the stored position.
func (r *GameRecord) Board() (*board.Position, error) {
	return board.ParsePosition(r.Position)
}

// Advance records that the game moved on to pos. It returns false if pos
// is the position already stored.
func (r *GameRecord) Advance(pos *board.Position) bool {
	if pos.Hash() == r.Hash && pos.String() == r.Position {
		return false
	}
	r.setPosition(pos)
	r.Moves++
	r.UpdatedAt = time.Now()
	return true
}

func (r *GameRecord) setPosition(pos *board.Position) {
	r.Position = pos.String()
	r.Hash = pos.Hash()
	switch pos.Winner() {
	case board.Red:
		r.Status = StatusRedWon
	case board.Black:
		r.Status = StatusBlackWon
	}
}

// GameStats stores result statistics over finished games.
type GameStats struct {
	GamesPlayed int `json:"games_played"`
	RedWins     int `json:"red_wins"`
	BlackWins   int `json:"black_wins"`
	Abandoned   int `json:"abandoned"`
	TotalMoves  int `json:"total_moves"`
}

// RedWinRate returns red's share of decided games as a percentage (0-100).
func (s *GameStats) RedWinRate() float64 {
	decided := s.RedWins + s.BlackWins
	if decided == 0 {
		return 0
	}
	return float64(s.RedWins) / float64(decided) * 100
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database under dataDir, or under the platform data
// directory when dataDir is empty.
func NewStorage(dataDir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// NewMemoryStorage opens a database that lives only in memory.
func NewMemoryStorage() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id uuid.UUID) []byte {
	return []byte(gamePrefix + id.String())
}

// SaveGame writes the record, replacing any earlier version.
func (s *Storage) SaveGame(rec *GameRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// LoadGame loads a saved game by id.
func (s *Storage) LoadGame(id uuid.UUID) (*GameRecord, error) {
	rec := &GameRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrGameNotFound, id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListGames returns all saved games, most recently updated first.
func (s *Storage) ListGames() ([]*GameRecord, error) {
	var games []*GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			rec := &GameRecord{}
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			})
			if err != nil {
				return err
			}
			games = append(games, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].UpdatedAt.After(games[j].UpdatedAt)
	})
	return games, nil
}

// DeleteGame removes a saved game. Deleting an unknown id is not an error.
func (s *Storage) DeleteGame(id uuid.UUID) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// SaveStats saves game statistics
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := &GameStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordResult saves a finished game and folds it into the statistics.
// Games still in progress are rejected.
func (s *Storage) RecordResult(rec *GameRecord) error {
	if !rec.Status.Finished() {
		return fmt.Errorf("game %s is still in progress", rec.ID)
	}
	if err := s.SaveGame(rec); err != nil {
		return err
	}

	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalMoves += rec.Moves

	switch rec.Status {
	case StatusRedWon:
		stats.RedWins++
	case StatusBlackWon:
		stats.BlackWins++
	case StatusAbandoned:
		stats.Abandoned++
	}

	return s.SaveStats(stats)
}

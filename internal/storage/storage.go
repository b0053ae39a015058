package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// UserPreferences stores viewer settings.
type UserPreferences struct {
	SoundEnabled    bool      `json:"sound_enabled"`
	ShowCoordinates bool      `json:"show_coordinates"`
	LastPlayed      time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		SoundEnabled:    true,
		ShowCoordinates: false,
	}
}

// PlayStats accumulates over every session ever played.
type PlayStats struct {
	SessionsPlayed int           `json:"sessions_played"`
	MovesPlayed    int           `json:"moves_played"`
	WhiteTime      time.Duration `json:"white_time"`
	BlackTime      time.Duration `json:"black_time"`
	LongestSession time.Duration `json:"longest_session"`
	LastSessionID  string        `json:"last_session_id"`
	LastPlayed     time.Time     `json:"last_played"`
}

// TotalTime returns the thinking time of both sides over all sessions.
func (s *PlayStats) TotalTime() time.Duration {
	return s.WhiteTime + s.BlackTime
}

// AverageMoves returns the mean number of moves per session.
func (s *PlayStats) AverageMoves() float64 {
	if s.SessionsPlayed == 0 {
		return 0
	}
	return float64(s.MovesPlayed) / float64(s.SessionsPlayed)
}

// SessionRecord describes one finished session.
type SessionRecord struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Moves     int
	WhiteTime time.Duration
	BlackTime time.Duration
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database in dir. An empty dir opens an
// in-memory database.
func Open(dir string, log *zap.Logger) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	if log != nil {
		opts.Logger = badgerLogger{log.Named("badger").Sugar()}
	} else {
		opts.Logger = nil
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger %q: %w", dir, err)
	}
	return &Storage{db: db}, nil
}

// NewStorage opens the database in the user's data directory.
func NewStorage(log *zap.Logger) (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir, log)
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()
	if err := s.get(keyPreferences, prefs); err != nil {
		return DefaultPreferences(), err
	}
	return prefs, nil
}

// LoadStats loads play statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*PlayStats, error) {
	stats := &PlayStats{}
	if err := s.get(keyStats, stats); err != nil {
		return &PlayStats{}, err
	}
	return stats, nil
}

// RecordSession folds a finished session into the play statistics.
func (s *Storage) RecordSession(rec SessionRecord) (*PlayStats, error) {
	var stats PlayStats
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := getTxn(txn, keyStats, &stats); err != nil {
			return err
		}

		stats.SessionsPlayed++
		stats.MovesPlayed += rec.Moves
		stats.WhiteTime += rec.WhiteTime
		stats.BlackTime += rec.BlackTime
		if d := rec.EndedAt.Sub(rec.StartedAt); d > stats.LongestSession {
			stats.LongestSession = d
		}
		stats.LastSessionID = rec.ID
		stats.LastPlayed = rec.EndedAt

		data, err := json.Marshal(&stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
	if err != nil {
		return nil, fmt.Errorf("record session %s: %w", rec.ID, err)
	}
	return &stats, nil
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		return getTxn(txn, key, v)
	})
}

// getTxn decodes key into v, leaving v untouched when the key is absent.
func getTxn(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

// badgerLogger routes badger's internal logging through zap.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func (l badgerLogger) Errorf(f string, args ...interface{})   { l.s.Errorf(f, args...) }
func (l badgerLogger) Warningf(f string, args ...interface{}) { l.s.Warnf(f, args...) }
func (l badgerLogger) Infof(f string, args ...interface{})    { l.s.Debugf(f, args...) }
func (l badgerLogger) Debugf(f string, args ...interface{})   { l.s.Debugf(f, args...) }

package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/hailam/fenboard/internal/board"
	"github.com/rs/zerolog"
)

// Storage keys
const (
	prefixPosition = "pos/"
	prefixHash     = "hash/"
)

var (
	ErrNotFound    = errors.New("position not found")
	ErrInvalidName = errors.New("invalid position name")
)

// Options configure Open.
type Options struct {
	Dir      string // database directory; ignored when InMemory is set
	InMemory bool
	Logger   zerolog.Logger
}

// Storage wraps BadgerDB for persistent storage of named positions.
type Storage struct {
	db  *badger.DB
	log zerolog.Logger
}

// Open opens (or creates) the position database.
func Open(o Options) (*Storage, error) {
	var opts badger.Options
	if o.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if o.Dir == "" {
			dir, err := GetDatabaseDir()
			if err != nil {
				return nil, err
			}
			o.Dir = dir
		}
		opts = badger.DefaultOptions(o.Dir)
	}
	opts = opts.WithLogger(badgerLogger{o.Logger.With().Str("component", "badger").Logger()})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	o.Logger.Debug().Str("dir", o.Dir).Bool("in_memory", o.InMemory).Msg("position store opened")

	return &Storage{db: db, log: o.Logger}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func positionKey(name string) []byte {
	return []byte(prefixPosition + name)
}

func hashPrefix(hash uint64) string {
	return fmt.Sprintf("%s%016x/", prefixHash, hash)
}

func hashKey(hash uint64, name string) []byte {
	return []byte(hashPrefix(hash) + name)
}

// getPosition reads a stored position inside txn.
func getPosition(txn *badger.Txn, name string) (*board.Position, error) {
	item, err := txn.Get(positionKey(name))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	pos := new(board.Position)
	err = item.Value(func(val []byte) error {
		return pos.UnmarshalBinary(val)
	})
	if err != nil {
		return nil, fmt.Errorf("position %q: %w", name, err)
	}
	return pos, nil
}

// SavePosition stores pos under name, replacing any previous entry, and
// indexes it by its Zobrist hash.
func (s *Storage) SavePosition(name string, pos *board.Position) error {
	if err := validateName(name); err != nil {
		return err
	}
	data, err := pos.MarshalBinary()
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		old, err := getPosition(txn, name)
		switch {
		case err == nil:
			if err := txn.Delete(hashKey(old.Hash(), name)); err != nil {
				return err
			}
		case !errors.Is(err, ErrNotFound):
			return err
		}

		if err := txn.Set(positionKey(name), data); err != nil {
			return err
		}
		return txn.Set(hashKey(pos.Hash(), name), []byte{})
	})
	if err != nil {
		return err
	}

	s.log.Debug().Str("name", name).Str("fen", pos.FEN()).Msg("position saved")
	return nil
}

// LoadPosition returns the position stored under name.
func (s *Storage) LoadPosition(name string) (*board.Position, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	var pos *board.Position
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		pos, err = getPosition(txn, name)
		return err
	})
	return pos, err
}

// DeletePosition removes the position stored under name.
func (s *Storage) DeletePosition(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		pos, err := getPosition(txn, name)
		if err != nil {
			return err
		}
		if err := txn.Delete(hashKey(pos.Hash(), name)); err != nil {
			return err
		}
		return txn.Delete(positionKey(name))
	})
	if err != nil {
		return err
	}

	s.log.Debug().Str("name", name).Msg("position deleted")
	return nil
}

// ListPositions returns the names of all stored positions in sorted order.
func (s *Storage) ListPositions() ([]string, error) {
	return s.scanNames(prefixPosition)
}

// FindByHash returns the names of stored positions whose Zobrist hash is
// hash, in sorted order.
func (s *Storage) FindByHash(hash uint64) ([]string, error) {
	return s.scanNames(hashPrefix(hash))
}

func (s *Storage) scanNames(prefix string) ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, prefix))
		}
		return nil
	})
	return names, err
}

// badgerLogger forwards badger's internal logging to zerolog.
type badgerLogger struct {
	log zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msgf(strings.TrimSpace(format), args...)
}

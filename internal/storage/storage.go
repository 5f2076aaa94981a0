package storage

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes for the two snapshot kinds this package persists.
const (
	correctionPrefix = "c:"
	pawnPrefix       = "p:"
)

// Storage wraps BadgerDB for persisting the engine's learned warm-start
// state between UCI sessions: correction history and pawn hash table
// entries, each keyed by a short prefix plus the entry's 16-bit table
// index (correction history) or its 64-bit pawn key (pawn hash).
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the on-disk database.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // badger's own logger would write to stdout, the UCI channel

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCorrectionEntries persists the nonzero entries of a correction
// history table, keyed by its 16-bit position index.
func (s *Storage) SaveCorrectionEntries(entries map[uint16]int16) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for idx, val := range entries {
			key := append([]byte(correctionPrefix), 0, 0)
			binary.BigEndian.PutUint16(key[len(correctionPrefix):], idx)

			buf := make([]byte, 2)
			binary.BigEndian.PutUint16(buf, uint16(val))

			if err := txn.Set(key, buf); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadCorrectionEntries reads back everything SaveCorrectionEntries wrote.
func (s *Storage) LoadCorrectionEntries() (map[uint16]int16, error) {
	entries := make(map[uint16]int16)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(correctionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			k := item.KeyCopy(nil)
			idx := binary.BigEndian.Uint16(k[len(prefix):])

			err := item.Value(func(val []byte) error {
				entries[idx] = int16(binary.BigEndian.Uint16(val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return entries, err
}

// PawnSnapshot is one persisted pawn hash table entry.
type PawnSnapshot struct {
	Key     uint64
	MgScore int16
	EgScore int16
}

// SavePawnEntries persists a batch of pawn hash table entries, keyed by
// their full Zobrist pawn key.
func (s *Storage) SavePawnEntries(entries []PawnSnapshot) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, e := range entries {
			key := append([]byte(pawnPrefix), make([]byte, 8)...)
			binary.BigEndian.PutUint64(key[len(pawnPrefix):], e.Key)

			buf := make([]byte, 4)
			binary.BigEndian.PutUint16(buf[0:2], uint16(e.MgScore))
			binary.BigEndian.PutUint16(buf[2:4], uint16(e.EgScore))

			if err := txn.Set(key, buf); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadPawnEntries reads back everything SavePawnEntries wrote.
func (s *Storage) LoadPawnEntries() ([]PawnSnapshot, error) {
	var entries []PawnSnapshot

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(pawnPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			k := item.KeyCopy(nil)
			key := binary.BigEndian.Uint64(k[len(prefix):])

			err := item.Value(func(val []byte) error {
				entries = append(entries, PawnSnapshot{
					Key:     key,
					MgScore: int16(binary.BigEndian.Uint16(val[0:2])),
					EgScore: int16(binary.BigEndian.Uint16(val[2:4])),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return entries, err
}

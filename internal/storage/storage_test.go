package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mantis-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	dbDir := filepath.Join(tmpDir, "db")
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &Storage{db: db}
}

func TestCorrectionEntriesRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	want := map[uint16]int16{
		0:      42,
		1234:   -7,
		65535:  16000,
	}

	if err := s.SaveCorrectionEntries(want); err != nil {
		t.Fatalf("SaveCorrectionEntries failed: %v", err)
	}

	got, err := s.LoadCorrectionEntries()
	if err != nil {
		t.Fatalf("LoadCorrectionEntries failed: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for idx, val := range want {
		if got[idx] != val {
			t.Errorf("entry %d: expected %d, got %d", idx, val, got[idx])
		}
	}
}

func TestPawnEntriesRoundTrip(t *testing.T) {
	s := newTestStorage(t)

	want := []PawnSnapshot{
		{Key: 0x1111111111111111, MgScore: 12, EgScore: -34},
		{Key: 0xDEADBEEFCAFEBABE, MgScore: -128, EgScore: 256},
	}

	if err := s.SavePawnEntries(want); err != nil {
		t.Fatalf("SavePawnEntries failed: %v", err)
	}

	got, err := s.LoadPawnEntries()
	if err != nil {
		t.Fatalf("LoadPawnEntries failed: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}

	byKey := make(map[uint64]PawnSnapshot, len(got))
	for _, e := range got {
		byKey[e.Key] = e
	}
	for _, e := range want {
		got, ok := byKey[e.Key]
		if !ok {
			t.Fatalf("missing entry for key %x", e.Key)
		}
		if got.MgScore != e.MgScore || got.EgScore != e.EgScore {
			t.Errorf("key %x: expected (%d,%d), got (%d,%d)", e.Key, e.MgScore, e.EgScore, got.MgScore, got.EgScore)
		}
	}
}

func TestDataPaths(t *testing.T) {
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}

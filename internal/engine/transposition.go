package engine

import (
	"sync/atomic"

	"github.com/Clinton-Nmereole/mantis/internal/board"
)

// TTFlag indicates the type of bound stored in the transposition table.
type TTFlag uint8

const (
	TTExact      TTFlag = iota // Exact score
	TTLowerBound               // Failed high (beta cutoff)
	TTUpperBound               // Failed low
)

// ttSlot is the table's storage cell. key is published last on Store and
// read first on Probe, so a racing writer from another worker never hands
// out a payload that doesn't belong to the key a reader just validated
// against. The payload fields themselves are not further synchronized:
// a torn read under concurrent writes can at worst surface a stale-but-
// self-consistent entry from one generation ago, which the search
// treats the same as any other hash collision.
type ttSlot struct {
	key      atomic.Uint32
	bestMove board.Move
	score    int16
	depth    int8
	flag     TTFlag
	age      uint8
	isPV     bool
}

// TTEntry is the value returned from Probe: a snapshot copy of a slot,
// safe for the caller to read without further synchronization.
type TTEntry struct {
	Key      uint32     // Upper 32 bits of Zobrist hash for verification
	BestMove board.Move // Best move found
	Score    int16      // Score (bounded by flag)
	Depth    int8       // Search depth
	Flag     TTFlag     // Type of bound
	Age      uint8      // Generation for replacement
	IsPV     bool       // Whether this entry was stored from a PV node
}

// TranspositionTable is a hash table for storing search results, shared
// across worker goroutines. Lazy SMP workers Probe and Store the same
// table concurrently; see ttSlot for the concurrency discipline.
type TranspositionTable struct {
	entries []ttSlot
	size    uint64
	mask    uint64
	age     uint8

	// Statistics
	hits   atomic.Uint64
	probes atomic.Uint64
}

// NewTranspositionTable creates a transposition table with the given size in MB.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	// Calculate number of entries
	entrySize := uint64(16) // Approximate size of ttSlot
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize

	// Round down to power of 2 for fast modulo
	numEntries = roundDownToPowerOf2(numEntries)

	return &TranspositionTable{
		entries: make([]ttSlot, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// Probe looks up a position in the transposition table.
// Returns the entry and true if found, otherwise returns empty entry and false.
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	tt.probes.Add(1)

	idx := hash & tt.mask
	slot := &tt.entries[idx]

	key := slot.key.Load()
	if key != uint32(hash>>32) || key == 0 {
		return TTEntry{}, false
	}

	entry := TTEntry{
		Key:      key,
		BestMove: slot.bestMove,
		Score:    slot.score,
		Depth:    slot.depth,
		Flag:     slot.flag,
		Age:      slot.age,
		IsPV:     slot.isPV,
	}

	// Re-check the key after reading the payload: if a concurrent Store
	// landed on this slot in between, the payload we just read may not
	// belong to the key we validated. Discard rather than risk handing
	// out a mismatched bound.
	if slot.key.Load() != key {
		return TTEntry{}, false
	}

	tt.hits.Add(1)
	return entry, true
}

// Store saves a position in the transposition table.
func (tt *TranspositionTable) Store(hash uint64, depth int, score int, flag TTFlag, bestMove board.Move, isPV bool) {
	idx := hash & tt.mask
	slot := &tt.entries[idx]

	// Replacement strategy:
	// - Keep the existing entry only if it is from the current search,
	//   holds a different position, and is more than 2 plies deeper
	// - Otherwise overwrite it
	newKey := uint32(hash >> 32)
	if newKey == 0 {
		newKey = 1 // reserve 0 to mean "empty slot"
	}
	existingKey := slot.key.Load()
	keep := existingKey != 0 && existingKey != newKey &&
		slot.age == tt.age && int(slot.depth) > depth+2

	if !keep {
		slot.bestMove = bestMove
		slot.score = int16(score)
		slot.depth = int8(depth)
		slot.flag = flag
		slot.age = tt.age
		slot.isPV = isPV
		// Publish the key last: any goroutine that observes this key
		// is guaranteed to observe the payload fields written above.
		slot.key.Store(newKey)
	}
}

// NewSearch increments the age counter for a new search.
// This helps with replacement decisions.
func (tt *TranspositionTable) NewSearch() {
	tt.age++
}

// Clear clears the transposition table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = ttSlot{}
	}
	tt.age = 0
	tt.hits.Store(0)
	tt.probes.Store(0)
}

// HashFull returns the permille (parts per thousand) of the table that is used.
func (tt *TranspositionTable) HashFull() int {
	// Sample first 1000 entries
	used := 0
	sampleSize := 1000
	if uint64(sampleSize) > tt.size {
		sampleSize = int(tt.size)
	}

	for i := 0; i < sampleSize; i++ {
		if tt.entries[i].key.Load() != 0 && tt.entries[i].age == tt.age {
			used++
		}
	}

	return (used * 1000) / sampleSize
}

// HitRate returns the cache hit rate as a percentage.
func (tt *TranspositionTable) HitRate() float64 {
	probes := tt.probes.Load()
	if probes == 0 {
		return 0
	}
	return float64(tt.hits.Load()) / float64(probes) * 100
}

// Size returns the number of entries in the table.
func (tt *TranspositionTable) Size() uint64 {
	return tt.size
}

// AdjustScoreFromTT adjusts a score read from the transposition table.
// Mate scores need to be adjusted based on ply distance.
func AdjustScoreFromTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score - ply
	}
	if score < -MateScore+MaxPly {
		return score + ply
	}
	return score
}

// AdjustScoreToTT adjusts a score for storage in the transposition table.
func AdjustScoreToTT(score int, ply int) int {
	if score > MateScore-MaxPly {
		return score + ply
	}
	if score < -MateScore+MaxPly {
		return score - ply
	}
	return score
}

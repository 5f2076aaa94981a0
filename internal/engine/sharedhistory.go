package engine

import "sync/atomic"

// SharedHistory is a (from,to) history table shared across every Lazy
// SMP worker goroutine, so a cutoff move discovered by one worker
// immediately improves move ordering in all the others. Each cell is an
// independent atomic counter: concurrent updates to different cells
// never contend, and a racing read/write on the same cell just sees
// the value before or after, never a torn int.
type SharedHistory struct {
	scores [64][64]atomic.Int32
}

// NewSharedHistory creates an empty shared history table.
func NewSharedHistory() *SharedHistory {
	return &SharedHistory{}
}

// Get returns the current shared bonus for a (from,to) pair.
func (sh *SharedHistory) Get(from, to int) int {
	return int(sh.scores[from][to].Load())
}

// Update adds bonus to the shared (from,to) score, clamped to ±10000 to
// match the per-worker history table's range (§4.5).
func (sh *SharedHistory) Update(from, to, bonus int) {
	cell := &sh.scores[from][to]
	for {
		old := cell.Load()
		next := int32(clampHistory(int(old) + bonus))
		if cell.CompareAndSwap(old, next) {
			return
		}
	}
}

// Clear resets every shared history score to zero.
func (sh *SharedHistory) Clear() {
	for i := range sh.scores {
		for j := range sh.scores[i] {
			sh.scores[i][j].Store(0)
		}
	}
}

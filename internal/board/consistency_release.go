//go:build !chessdebug

package board

// checkPositionConsistency is a no-op outside chessdebug builds; the cost
// of the full mailbox/bitboard/hash walk is not paid in release builds.
func checkPositionConsistency(*Position) {}

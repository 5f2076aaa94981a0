//go:build chessdebug

package board

import "fmt"

// checkPositionConsistency panics with a descriptive message if the
// mailbox disagrees with the piece bitboards, or if the occupancy caches
// are not the union of the per-color piece bitboards. Only compiled into
// chessdebug builds; release builds use the no-op in consistency_release.go.
func checkPositionConsistency(p *Position) {
	var white, black Bitboard
	for pt := Pawn; pt <= King; pt++ {
		white |= p.Pieces[White][pt]
		black |= p.Pieces[Black][pt]
	}
	if white != p.Occupied[White] {
		panic(fmt.Sprintf("chessdebug: white occupancy cache out of sync: cache=%016x derived=%016x", p.Occupied[White], white))
	}
	if black != p.Occupied[Black] {
		panic(fmt.Sprintf("chessdebug: black occupancy cache out of sync: cache=%016x derived=%016x", p.Occupied[Black], black))
	}
	if white|black != p.AllOccupied {
		panic(fmt.Sprintf("chessdebug: AllOccupied out of sync: cache=%016x derived=%016x", p.AllOccupied, white|black))
	}

	for sq := Square(0); sq < 64; sq++ {
		want := NoPiece
		for c := White; c <= Black; c++ {
			for pt := Pawn; pt <= King; pt++ {
				if p.Pieces[c][pt]&SquareBB(sq) != 0 {
					if want != NoPiece {
						panic(fmt.Sprintf("chessdebug: square %s set in more than one bitboard", sq))
					}
					want = NewPiece(pt, c)
				}
			}
		}
		if p.Mailbox[sq] != want {
			panic(fmt.Sprintf("chessdebug: mailbox[%s] = %v, bitboards say %v", sq, p.Mailbox[sq], want))
		}
	}

	if p.Hash != p.ComputeHash() {
		panic(fmt.Sprintf("chessdebug: hash out of sync: cached=%016x fresh=%016x", p.Hash, p.ComputeHash()))
	}
}

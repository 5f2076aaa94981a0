// Package board implements chess board representation using bitboards.
package board

import "fmt"

// Square identifies one of the 64 board cells plus the NoSquare sentinel.
// Encoding is Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63,
// i.e. sq = rank*8 + file.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8

	// NoSquare marks "not on the board" (e.g. no en passant target).
	NoSquare Square = 64
)

// File returns the square's column, 0 for the a-file through 7 for the h-file.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the square's row, 0 for rank 1 through 7 for rank 8.
func (sq Square) Rank() int { return int(sq) >> 3 }

// NewSquare builds a Square from 0-indexed file and rank coordinates.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// ParseSquare decodes algebraic notation such as "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	return NewSquare(file, rank), nil
}

// String renders a Square in algebraic notation, or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// IsValid reports whether sq addresses one of the 64 real board cells.
func (sq Square) IsValid() bool { return sq < NoSquare }

// Mirror flips a square across the board's horizontal midline, converting
// between White's and Black's point of view (e.g. e1 <-> e8).
func (sq Square) Mirror() Square { return sq ^ 56 }

// RelativeRank returns the rank of sq as seen by color c: rank 0 is always
// that color's back rank, rank 7 its promotion rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return 7 - sq.Rank()
}

// SameDiagonal reports whether two squares lie on a common diagonal,
// i.e. a bishop or queen could slide between them absent blockers.
func (sq Square) SameDiagonal(other Square) bool {
	fileDiff := sq.File() - other.File()
	rankDiff := sq.Rank() - other.Rank()
	if fileDiff < 0 {
		fileDiff = -fileDiff
	}
	if rankDiff < 0 {
		rankDiff = -rankDiff
	}
	return fileDiff == rankDiff
}

// Distance returns the Chebyshev distance between two squares: the number
// of king steps needed to walk from one to the other, max(|df|, |dr|).
// Evaluation terms that estimate king-to-target races (passed pawns,
// king tropism, mop-up) all measure progress in this unit.
func (sq Square) Distance(other Square) int {
	fileDiff := sq.File() - other.File()
	if fileDiff < 0 {
		fileDiff = -fileDiff
	}
	rankDiff := sq.Rank() - other.Rank()
	if rankDiff < 0 {
		rankDiff = -rankDiff
	}
	if fileDiff > rankDiff {
		return fileDiff
	}
	return rankDiff
}

// IsAdjacent reports whether other is one king step away from sq (distance
// exactly 1); used by king-safety terms that look at squares touching the king.
func (sq Square) IsAdjacent(other Square) bool {
	return sq != other && sq.Distance(other) == 1
}

// IsLightSquare reports whether sq is a light square under the standard
// chessboard coloring (a1 is dark), used by bishop-pair and corner-mate
// evaluation terms that care which diagonal color a bishop controls.
func (sq Square) IsLightSquare() bool {
	return (sq.File()+sq.Rank())%2 != 0
}

package chess

import (
	"math/rand"
	"time"

	"golang.org/x/exp/slices"
)

// Create960Game builds a Fischer-random starting position. Each color's
// back rank is generated independently, from a random source scoped to
// this call; the two sides need not mirror each other.
func (rb StandardRulebook) Create960Game() ChessGame {
	return rb.Create960GameFrom(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Create960GameFrom is Create960Game with an injected source, so setups
// are reproducible under test.
func (rb StandardRulebook) Create960GameFrom(rng *rand.Rand) ChessGame {
	return gameFromBackRanks(backRank960(rng), backRank960(rng))
}

// backRank960 places the eight back-rank pieces under the Chess960
// constraints: the king strictly between the two rooks, the bishops on
// opposite-parity files. Placement order: king on a non-corner file, one
// rook on each side of it, a bishop anywhere free, the second bishop on a
// free file of the opposite parity, the knights, and the queen on the
// file left over. At the second bishop at most three squares of its
// parity class can already be taken, so a legal file always remains.
func backRank960(rng *rand.Rand) [8]PieceType {
	free := []int{0, 1, 2, 3, 4, 5, 6, 7}
	var rank [8]PieceType

	pick := func(fits func(col int) bool) int {
		candidates := make([]int, 0, len(free))
		for _, col := range free {
			if fits(col) {
				candidates = append(candidates, col)
			}
		}
		col := candidates[rng.Intn(len(candidates))]
		free = slices.Delete(free, slices.Index(free, col), slices.Index(free, col)+1)
		return col
	}
	anyFile := func(int) bool { return true }

	kingCol := pick(func(col int) bool { return col != 0 && col != 7 })
	rank[kingCol] = King
	rank[pick(func(col int) bool { return col < kingCol })] = Rook
	rank[pick(func(col int) bool { return col > kingCol })] = Rook

	firstBishop := pick(anyFile)
	rank[firstBishop] = Bishop
	rank[pick(func(col int) bool { return col%2 != firstBishop%2 })] = Bishop

	rank[pick(anyFile)] = Knight
	rank[pick(anyFile)] = Knight
	rank[free[0]] = Queen

	return rank
}

package chess

import (
	"math/rand"
	"testing"
)

func checkBackRank(t *testing.T, rank [8]PieceType) {
	t.Helper()

	counts := map[PieceType]int{}
	for _, pc := range rank {
		counts[pc]++
	}
	want := map[PieceType]int{Rook: 2, Knight: 2, Bishop: 2, Queen: 1, King: 1, Pawn: 0}
	for pt, n := range want {
		if counts[pt] != n {
			t.Fatalf("rank %v holds %d %v; want %d", rank, counts[pt], pt, n)
		}
	}

	kingCol, firstRook, lastRook := -1, -1, -1
	firstBishop, lastBishop := -1, -1
	for col, pc := range rank {
		switch pc {
		case King:
			kingCol = col
		case Rook:
			if firstRook == -1 {
				firstRook = col
			} else {
				lastRook = col
			}
		case Bishop:
			if firstBishop == -1 {
				firstBishop = col
			} else {
				lastBishop = col
			}
		}
	}
	if !(firstRook < kingCol && kingCol < lastRook) {
		t.Errorf("rank %v: king at %d not strictly between rooks %d and %d", rank, kingCol, firstRook, lastRook)
	}
	if firstBishop%2 == lastBishop%2 {
		t.Errorf("rank %v: bishops at %d and %d share square color", rank, firstBishop, lastBishop)
	}
}

func TestBackRank960Constraints(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		checkBackRank(t, backRank960(rand.New(rand.NewSource(seed))))
	}
}

func TestCreate960Game(t *testing.T) {
	rb := NewStandardRulebook()
	g := rb.Create960GameFrom(rand.New(rand.NewSource(42)))

	if g.Active != White {
		t.Errorf("960 game active color = %v; want white", g.Active)
	}
	if len(g.Board.Positions()) != 32 {
		t.Fatalf("960 game has %d pieces; want 32", len(g.Board.Positions()))
	}

	var whiteRank, blackRank [8]PieceType
	for col := 0; col < 8; col++ {
		w, ok := g.Board.PieceAt(Position{Row: 0, Col: col})
		if !ok || w.Color != White {
			t.Fatalf("square (0,%d) should hold a white piece", col)
		}
		whiteRank[col] = w.Type
		b, ok := g.Board.PieceAt(Position{Row: 7, Col: col})
		if !ok || b.Color != Black {
			t.Fatalf("square (7,%d) should hold a black piece", col)
		}
		blackRank[col] = b.Type
		if pc, ok := g.Board.PieceAt(Position{Row: 1, Col: col}); !ok || pc.Type != Pawn {
			t.Errorf("square (1,%d) should hold a white pawn", col)
		}
		if pc, ok := g.Board.PieceAt(Position{Row: 6, Col: col}); !ok || pc.Type != Pawn {
			t.Errorf("square (6,%d) should hold a black pawn", col)
		}
	}
	checkBackRank(t, whiteRank)
	checkBackRank(t, blackRank)

	if status := rb.GetStatus(g); status.Outcome != Ongoing {
		t.Errorf("fresh 960 game status = %v; want ongoing", status.Outcome)
	}
}

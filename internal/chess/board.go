package chess

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Board is an immutable sparse mapping of occupied squares. Every update
// returns a fresh Board; a value in hand never changes underneath its
// holder, so snapshots are safe to share and to speculate against.
type Board struct {
	squares map[Position]Piece
}

func NewBoard() Board {
	return Board{squares: map[Position]Piece{}}
}

func (b Board) clone() Board {
	next := Board{squares: make(map[Position]Piece, len(b.squares))}
	maps.Copy(next.squares, b.squares)
	return next
}

// PieceAt reports the occupant of pos, if any.
func (b Board) PieceAt(pos Position) (Piece, bool) {
	pc, ok := b.squares[pos]
	return pc, ok
}

// PieceOf is PieceAt filtered to a color; an opponent's piece reads as
// an empty square.
func (b Board) PieceOf(pos Position, c Color) (Piece, bool) {
	pc, ok := b.squares[pos]
	if !ok || pc.Color != c {
		return Piece{}, false
	}
	return pc, true
}

// Add returns a board with pc placed at pos, replacing any occupant.
func (b Board) Add(pos Position, pc Piece) Board {
	next := b.clone()
	next.squares[pos] = pc
	return next
}

// Remove returns a board with pos vacated.
func (b Board) Remove(pos Position) Board {
	next := b.clone()
	delete(next.squares, pos)
	return next
}

// Move returns a board with the occupant of from relocated to to,
// replacing any occupant there and marking the piece as moved. An empty
// from square is a caller contract violation; the board is returned
// unchanged.
func (b Board) Move(from, to Position) Board {
	pc, ok := b.squares[from]
	if !ok {
		return b
	}
	next := b.clone()
	delete(next.squares, from)
	pc.Moved = true
	next.squares[to] = pc
	return next
}

// Positions lists the occupied squares in row-major order, so iteration
// over the sparse map stays deterministic.
func (b Board) Positions() []Position {
	keys := maps.Keys(b.squares)
	slices.SortFunc(keys, func(a, b Position) int { return a.index() - b.index() })
	return keys
}

// Find locates a piece of the given type and color, in row-major order.
func (b Board) Find(t PieceType, c Color) (Position, bool) {
	for _, pos := range b.Positions() {
		pc := b.squares[pos]
		if pc.Type == t && pc.Color == c {
			return pos, true
		}
	}
	return Position{}, false
}

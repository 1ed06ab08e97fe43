package chess

import "golang.org/x/exp/slices"

// boardWith builds a board from a square -> piece map.
func boardWith(pieces map[Position]Piece) Board {
	b := NewBoard()
	for pos, pc := range pieces {
		b = b.Add(pos, pc)
	}
	return b
}

func gameWith(pieces map[Position]Piece, active Color) ChessGame {
	return ChessGame{
		Board:  boardWith(pieces),
		White:  Player{Color: White},
		Black:  Player{Color: Black},
		Active: active,
	}
}

func commandTargets(cmds []Command) []Position {
	targets := make([]Position, 0, len(cmds))
	for _, c := range cmds {
		if t, ok := c.(Targeted); ok {
			targets = append(targets, t.Target())
		}
	}
	sortPositions(targets)
	return targets
}

func updateDestinations(updates []Update) []Position {
	dests := make([]Position, 0, len(updates))
	for _, u := range updates {
		dests = append(dests, u.Destination())
	}
	sortPositions(dests)
	return dests
}

func sortPositions(positions []Position) {
	slices.SortFunc(positions, func(a, b Position) int { return a.index() - b.index() })
}

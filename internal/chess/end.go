package chess

// Outcome classifies a game. Ongoing is the only state with outgoing
// transitions.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

// Status is the result of classifying a game; Loser is meaningful only
// for Checkmate.
type Status struct {
	Outcome Outcome
	Loser   Color
}

// EndRule classifies a game from two questions: does the active player
// have any legal update, and is their king attacked. Nothing is cached;
// every query recomputes from the immutable game.
type EndRule struct {
	movement MovementRule
	check    CheckRule
}

func (r EndRule) GetStatus(g ChessGame) Status {
	for _, pos := range g.Board.Positions() {
		if _, ok := g.Board.PieceOf(pos, g.Active); !ok {
			continue
		}
		if len(legalUpdates(r.movement, r.check, g, pos)) > 0 {
			return Status{Outcome: Ongoing}
		}
	}
	if r.check.Check(g, g.ActivePlayer()) {
		return Status{Outcome: Checkmate, Loser: g.Active}
	}
	return Status{Outcome: Stalemate}
}

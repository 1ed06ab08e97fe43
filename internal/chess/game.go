package chess

// Player holds per-side identity within a game. Castling and double-step
// eligibility live structurally on the pieces, so the player itself is
// just its color.
type Player struct {
	Color Color
}

// ChessGame is a single immutable position in a game: the board, both
// players, whose turn it is, and the last applied update for
// history-dependent rules. Every transition yields a new value.
type ChessGame struct {
	Board  Board
	White  Player
	Black  Player
	Active Color
	Last   *Update
}

func (g ChessGame) ActivePlayer() Player {
	if g.Active == White {
		return g.White
	}
	return g.Black
}

func (g ChessGame) PassivePlayer() Player {
	if g.Active == White {
		return g.Black
	}
	return g.White
}

// Update pairs a resulting game with the command that produced it.
type Update struct {
	Game    ChessGame
	Command Command
}

// Destination is the square the moved piece ends up on, the one a caller
// would present as the clickable target of this update.
func (u Update) Destination() Position {
	if t, ok := u.Command.(Targeted); ok {
		return t.Target()
	}
	return Position{}
}

// Promotion reports the piece type this update promotes to, if it is a
// promotion.
func (u Update) Promotion() (PieceType, bool) {
	if pc, ok := headCommand(u.Command).(PromoteCommand); ok {
		return pc.Piece, true
	}
	return 0, false
}

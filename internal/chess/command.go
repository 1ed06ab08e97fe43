package chess

// Command is one unit of game transition. Apply never mutates its input;
// it returns the successor game and whether the transition could be
// performed at all. A false result is an expected outcome of speculation,
// not an error.
type Command interface {
	Apply(g ChessGame) (ChessGame, bool)
}

// Targeted is implemented by commands that land a piece on a square a
// caller selected. A sequence delegates to its head, so wrapped candidate
// commands stay targetable.
type Targeted interface {
	Target() Position
}

// MoveCommand relocates one piece. It fails on an empty origin or an
// own-piece destination; the latter is what lets a composite castle
// collapse when a destination square turns out to be occupied.
type MoveCommand struct {
	From Position
	To   Position
}

func (c MoveCommand) Apply(g ChessGame) (ChessGame, bool) {
	pc, ok := g.Board.PieceAt(c.From)
	if !ok {
		return g, false
	}
	// From == To is a legal degenerate move: a Chess960 king castling from
	// its own destination square stays put and is only marked as moved.
	if c.To != c.From {
		if occupant, occupied := g.Board.PieceAt(c.To); occupied && occupant.Color == pc.Color {
			return g, false
		}
	}
	g.Board = g.Board.Move(c.From, c.To)
	return g, true
}

func (c MoveCommand) Target() Position { return c.To }

// PromoteCommand advances a pawn onto the far rank and replaces it with
// Piece in one transition.
type PromoteCommand struct {
	From  Position
	To    Position
	Piece PieceType
}

func (c PromoteCommand) Apply(g ChessGame) (ChessGame, bool) {
	pawn, ok := g.Board.PieceAt(c.From)
	if !ok || pawn.Type != Pawn {
		return g, false
	}
	if occupant, occupied := g.Board.PieceAt(c.To); occupied && occupant.Color == pawn.Color {
		return g, false
	}
	g.Board = g.Board.Remove(c.From).Add(c.To, Piece{Type: c.Piece, Color: pawn.Color, Moved: true})
	return g, true
}

func (c PromoteCommand) Target() Position { return c.To }

// PlaceCommand puts a specific piece on a square; it fails if the square
// is occupied. Together with RemoveCommand it lets a castle lift both
// pieces before setting them down, so overlapping start and destination
// squares resolve cleanly.
type PlaceCommand struct {
	At    Position
	Piece Piece
}

func (c PlaceCommand) Apply(g ChessGame) (ChessGame, bool) {
	if _, occupied := g.Board.PieceAt(c.At); occupied {
		return g, false
	}
	g.Board = g.Board.Add(c.At, c.Piece)
	return g, true
}

// RemoveCommand vacates a square; it fails if the square is already empty.
type RemoveCommand struct {
	At Position
}

func (c RemoveCommand) Apply(g ChessGame) (ChessGame, bool) {
	if _, ok := g.Board.PieceAt(c.At); !ok {
		return g, false
	}
	g.Board = g.Board.Remove(c.At)
	return g, true
}

// SequenceCommand chains two commands into one all-or-nothing transition.
// If either half fails the whole sequence fails and the original game is
// handed back untouched.
type SequenceCommand struct {
	First  Command
	Second Command
}

func (c SequenceCommand) Apply(g ChessGame) (ChessGame, bool) {
	mid, ok := c.First.Apply(g)
	if !ok {
		return g, false
	}
	next, ok := c.Second.Apply(mid)
	if !ok {
		return g, false
	}
	return next, true
}

func (c SequenceCommand) Target() Position {
	if t, ok := c.First.(Targeted); ok {
		return t.Target()
	}
	if t, ok := c.Second.(Targeted); ok {
		return t.Target()
	}
	return Position{}
}

// EndTurnCommand hands the move to the other player.
type EndTurnCommand struct{}

func (EndTurnCommand) Apply(g ChessGame) (ChessGame, bool) {
	g.Active = g.Active.Opponent()
	return g, true
}

// RecordCommand stamps the game with its own provenance: the candidate
// command that produced it, paired with the state it produced. En passant
// reads this record on the following ply.
type RecordCommand struct {
	Moved Command
}

func (c RecordCommand) Apply(g ChessGame) (ChessGame, bool) {
	g.Last = &Update{Game: g, Command: c.Moved}
	return g, true
}

// headCommand unwraps nested sequences down to the leading piece-level
// command.
func headCommand(c Command) Command {
	for {
		seq, ok := c.(SequenceCommand)
		if !ok {
			return c
		}
		c = seq.First
	}
}

package chess

// EnPassantRule yields the en passant capture when the game's last update
// was an enemy pawn double step ending beside the pawn at pos. The window
// exists for exactly one ply: the next update overwrites the record.
type EnPassantRule struct{}

func (EnPassantRule) GetCommands(g ChessGame, pos Position) []Command {
	pawn, ok := g.Board.PieceAt(pos)
	if !ok || pawn.Type != Pawn || g.Last == nil {
		return nil
	}
	mv, ok := headCommand(g.Last.Command).(MoveCommand)
	if !ok {
		return nil
	}
	passed, ok := g.Board.PieceAt(mv.To)
	if !ok || passed.Type != Pawn || passed.Color == pawn.Color {
		return nil
	}
	if mv.From.Col != mv.To.Col || abs(mv.To.Row-mv.From.Row) != 2 {
		return nil
	}
	if mv.To.Row != pos.Row || abs(mv.To.Col-pos.Col) != 1 {
		return nil
	}

	dest := Position{Row: pos.Row + pawn.Color.forward(), Col: mv.To.Col}
	return []Command{SequenceCommand{
		First:  MoveCommand{From: pos, To: dest},
		Second: RemoveCommand{At: mv.To},
	}}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

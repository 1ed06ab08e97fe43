package chess

// MovementRule generates every candidate command for the piece at a
// square: its own geometric moves plus whatever the castling, en passant,
// and promotion rules contribute. Generation is deliberately unfiltered;
// legality against check is layered on by the rulebook.
type MovementRule struct {
	castling  CastlingRule
	enPassant EnPassantRule
	promotion PromotionRule
}

func (r MovementRule) GetCommands(g ChessGame, pos Position) []Command {
	pc, ok := g.Board.PieceAt(pos)
	if !ok {
		return nil
	}

	var cmds []Command
	for _, dest := range pc.destinations(pos, g.Board) {
		cmds = append(cmds, MoveCommand{From: pos, To: dest})
	}
	cmds = append(cmds, r.castling.GetCommands(g, pos)...)
	cmds = append(cmds, r.enPassant.GetCommands(g, pos)...)
	cmds = append(cmds, r.promotion.GetCommands(g, pos)...)
	return cmds
}

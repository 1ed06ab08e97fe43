package chess

// StandardRulebook is the engine's facade: it builds games, enumerates
// legal updates from a square, and classifies game status. It holds no
// game state of its own; one rulebook serves any number of games.
type StandardRulebook struct {
	movement MovementRule
	check    CheckRule
	end      EndRule
}

func NewStandardRulebook() StandardRulebook {
	threat := ThreatAnalyzer{}
	check := CheckRule{threat: threat}
	movement := MovementRule{
		castling:  CastlingRule{threat: threat},
		enPassant: EnPassantRule{},
		promotion: PromotionRule{},
	}
	return StandardRulebook{
		movement: movement,
		check:    check,
		end:      EndRule{movement: movement, check: check},
	}
}

// GetStatus classifies g as ongoing, checkmate, or stalemate.
func (rb StandardRulebook) GetStatus(g ChessGame) Status {
	return rb.end.GetStatus(g)
}

// InCheck reports whether the active player's king is attacked.
func (rb StandardRulebook) InCheck(g ChessGame) bool {
	return rb.check.Check(g, g.ActivePlayer())
}

// GetUpdates enumerates the legal updates for the active player's piece
// at pos. An empty or opponent-held square yields an empty sequence.
func (rb StandardRulebook) GetUpdates(g ChessGame, pos Position) []Update {
	return legalUpdates(rb.movement, rb.check, g, pos)
}

// legalUpdates is the legality pipeline shared by GetUpdates and EndRule:
// generate candidates, wrap each to end the turn and record itself,
// speculatively execute, and keep only the results that do not leave the
// mover's own king attacked. After the turn end the mover is the passive
// player of the resulting game, which is exactly who must be safe.
func legalUpdates(movement MovementRule, check CheckRule, g ChessGame, pos Position) []Update {
	if _, ok := g.Board.PieceOf(pos, g.Active); !ok {
		return nil
	}

	var updates []Update
	for _, candidate := range movement.GetCommands(g, pos) {
		wrapped := SequenceCommand{
			First:  SequenceCommand{First: candidate, Second: EndTurnCommand{}},
			Second: RecordCommand{Moved: candidate},
		}
		next, ok := wrapped.Apply(g)
		if !ok {
			continue
		}
		if check.Check(next, next.PassivePlayer()) {
			continue
		}
		updates = append(updates, Update{Game: next, Command: wrapped})
	}
	return updates
}

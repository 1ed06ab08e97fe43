package chess

// CheckRule decides whether a player's king is currently attacked.
type CheckRule struct {
	threat ThreatAnalyzer
}

// Check reports whether p's king stands on an attacked square. Callers
// guarantee a king is present; if it is not, the player cannot be in
// check and false is returned.
func (r CheckRule) Check(g ChessGame, p Player) bool {
	kingPos, ok := g.Board.Find(King, p.Color)
	if !ok {
		return false
	}
	return r.threat.IsAttacked(g.Board, kingPos, p.Color.Opponent())
}

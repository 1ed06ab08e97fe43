package chess

// CastlingRule yields castle commands for an unmoved king: one per
// unmoved rook on its rank whose castle keeps every traversed or landing
// square clear and no attacked square on the king's path. The king lands
// on the c or g file and the rook on the adjacent d or f file, whichever
// side the rook started on; on Chess960 back ranks the start squares may
// overlap the destinations, so the composite lifts the rook first and
// sets it down after the king has moved.
type CastlingRule struct {
	threat ThreatAnalyzer
}

func (r CastlingRule) GetCommands(g ChessGame, pos Position) []Command {
	king, ok := g.Board.PieceAt(pos)
	if !ok || king.Type != King || king.Moved {
		return nil
	}

	var cmds []Command
	for _, rookPos := range g.Board.Positions() {
		rook, _ := g.Board.PieceAt(rookPos)
		if rook.Type != Rook || rook.Color != king.Color || rook.Moved || rookPos.Row != pos.Row {
			continue
		}
		kingDest, rookDest := castleDestinations(pos, rookPos)
		if !castleClear(g.Board, pos, rookPos, kingDest, rookDest) {
			continue
		}
		if r.pathAttacked(g.Board, pos, kingDest, king.Color.Opponent()) {
			continue
		}
		placed := rook
		placed.Moved = true
		cmds = append(cmds, SequenceCommand{
			First: RemoveCommand{At: rookPos},
			Second: SequenceCommand{
				First:  MoveCommand{From: pos, To: kingDest},
				Second: PlaceCommand{At: rookDest, Piece: placed},
			},
		})
	}
	return cmds
}

func castleDestinations(kingPos, rookPos Position) (Position, Position) {
	if rookPos.Col > kingPos.Col {
		return Position{Row: kingPos.Row, Col: 6}, Position{Row: kingPos.Row, Col: 5}
	}
	return Position{Row: kingPos.Row, Col: 2}, Position{Row: kingPos.Row, Col: 3}
}

// castleClear requires every square either piece traverses or lands on to
// be empty, except for the castling king and rook themselves. This covers
// the squares between the two pieces as well as both destinations.
func castleClear(b Board, kingPos, rookPos, kingDest, rookDest Position) bool {
	needed := map[Position]bool{}
	markSpan(needed, kingPos, kingDest)
	markSpan(needed, rookPos, rookDest)
	delete(needed, kingPos)
	delete(needed, rookPos)
	for sq := range needed {
		if _, occupied := b.PieceAt(sq); occupied {
			return false
		}
	}
	return true
}

// markSpan marks every square from a to b inclusive along their shared row.
func markSpan(set map[Position]bool, a, b Position) {
	lo, hi := a.Col, b.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo; col <= hi; col++ {
		set[Position{Row: a.Row, Col: col}] = true
	}
}

// pathAttacked checks the king's start, transit, and destination squares.
// Castling out of, through, or into check is forbidden.
func (r CastlingRule) pathAttacked(b Board, from, to Position, by Color) bool {
	step := 1
	if to.Col < from.Col {
		step = -1
	}
	for col := from.Col; ; col += step {
		if r.threat.IsAttacked(b, Position{Row: from.Row, Col: col}, by) {
			return true
		}
		if col == to.Col {
			return false
		}
	}
}

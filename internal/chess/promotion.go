package chess

// promotionTypes is what a pawn may become, in the order candidates are
// yielded.
var promotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

// PromotionRule yields promotion commands for a pawn one step short of
// the far rank: one command per reachable far-rank square per promotable
// type. Ordinary pawn movement never targets the far rank, so these are
// the only commands that put a piece there.
type PromotionRule struct{}

func (PromotionRule) GetCommands(g ChessGame, pos Position) []Command {
	pawn, ok := g.Board.PieceAt(pos)
	if !ok || pawn.Type != Pawn {
		return nil
	}
	fwd := pawn.Color.forward()
	far := pawn.Color.farRank()
	if pos.Row+fwd != far {
		return nil
	}

	var dests []Position
	ahead := pos.offset(fwd, 0)
	if _, occupied := g.Board.PieceAt(ahead); !occupied {
		dests = append(dests, ahead)
	}
	for _, dCol := range []int{-1, 1} {
		diag := pos.offset(fwd, dCol)
		if !diag.valid() {
			continue
		}
		if occupant, occupied := g.Board.PieceAt(diag); occupied && occupant.Color != pawn.Color {
			dests = append(dests, diag)
		}
	}

	var cmds []Command
	for _, dest := range dests {
		for _, t := range promotionTypes {
			cmds = append(cmds, PromoteCommand{From: pos, To: dest, Piece: t})
		}
	}
	return cmds
}

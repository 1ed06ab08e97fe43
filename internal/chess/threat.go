package chess

// ThreatAnalyzer answers the raw reachability question: can some piece of
// a color land on a square in one step. It deliberately knows nothing
// about turn order or check legality, so the castling and check rules can
// both consult it without circular dependencies.
type ThreatAnalyzer struct{}

// IsAttacked reports whether any piece of by on b attacks pos. The scan
// runs outward from the square: sliding rays for rook/bishop/queen lines,
// fixed offsets for knights, kings, and pawn captures.
func (ThreatAnalyzer) IsAttacked(b Board, pos Position, by Color) bool {
	if b.rayAttack(pos, by, rookDirs, Rook) {
		return true
	}
	if b.rayAttack(pos, by, bishopDirs, Bishop) {
		return true
	}
	if b.offsetAttack(pos, by, knightOffsets, Knight) {
		return true
	}
	if b.offsetAttack(pos, by, kingOffsets, King) {
		return true
	}
	return b.pawnAttack(pos, by)
}

func (b Board) rayAttack(pos Position, by Color, dirs []Position, slider PieceType) bool {
	for _, dir := range dirs {
		target := pos.offset(dir.Row, dir.Col)
		for target.valid() {
			if occupant, occupied := b.PieceAt(target); occupied {
				if occupant.Color == by && (occupant.Type == Queen || occupant.Type == slider) {
					return true
				}
				break
			}
			target = target.offset(dir.Row, dir.Col)
		}
	}
	return false
}

func (b Board) offsetAttack(pos Position, by Color, offsets []Position, t PieceType) bool {
	for _, off := range offsets {
		target := pos.offset(off.Row, off.Col)
		if !target.valid() {
			continue
		}
		if occupant, occupied := b.PieceAt(target); occupied && occupant.Color == by && occupant.Type == t {
			return true
		}
	}
	return false
}

func (b Board) pawnAttack(pos Position, by Color) bool {
	// A pawn attacks the two squares diagonally ahead of it, so look one
	// row back toward the attacker's side.
	for _, dCol := range []int{-1, 1} {
		target := pos.offset(-by.forward(), dCol)
		if !target.valid() {
			continue
		}
		if occupant, occupied := b.PieceAt(target); occupied && occupant.Color == by && occupant.Type == Pawn {
			return true
		}
	}
	return false
}

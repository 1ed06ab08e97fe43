package model

import "github.com/mkoster/rulebook-backend/internal/chess"

// PieceState is one occupied square in a client snapshot.
type PieceState struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// SessionState is the full client-facing snapshot of a game. Board is
// indexed [row][col] with row 0 as White's back rank; empty squares are
// nil.
type SessionState struct {
	Board    [8][8]*PieceState `json:"board"`
	ToMove   string            `json:"toMove"`
	Status   string            `json:"status"`
	Loser    string            `json:"loser,omitempty"`
	IsCheck  bool              `json:"isCheck"`
	LastMove *MoveState        `json:"lastMove"`
	Players  struct {
		White SeatedPlayer `json:"white"`
		Black SeatedPlayer `json:"black"`
	} `json:"players"`
}

func snapshotBoard(b chess.Board) [8][8]*PieceState {
	var out [8][8]*PieceState
	for _, pos := range b.Positions() {
		pc, _ := b.PieceAt(pos)
		out[pos.Row][pos.Col] = &PieceState{
			Type:  pc.Type.String(),
			Color: pc.Color.String(),
		}
	}
	return out
}

package model

import "github.com/mkoster/rulebook-backend/internal/chess"

// Variant selects the starting layout of a new game.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantChess960 Variant = "chess960"
)

// MoveRequest is a client's move: origin, destination, and the promotion
// piece when the move pushes a pawn onto the far rank. An empty Promotion
// defaults to queen.
type MoveRequest struct {
	From      chess.Position `json:"from"`
	To        chess.Position `json:"to"`
	Promotion string         `json:"promotion"`
}

// MoveState is the last applied move as shown to clients.
type MoveState struct {
	From chess.Position `json:"from"`
	To   chess.Position `json:"to"`
}

// Player is a participant as the matchmaking queue sees them.
type Player struct {
	ID string
}

// SeatedPlayer is a participant as game state snapshots show them.
type SeatedPlayer struct {
	ID       string `json:"id"`
	Color    string `json:"color"`
	TimeLeft int    `json:"timeLeft"`
}

// MatchFoundEvent notifies a queued player that a game is ready.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  string `json:"color"`
}

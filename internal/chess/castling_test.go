package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func castlePosition(extra map[Position]Piece) map[Position]Piece {
	pieces := map[Position]Piece{
		{Row: 0, Col: 4}: {Type: King, Color: White},
		{Row: 0, Col: 0}: {Type: Rook, Color: White},
		{Row: 0, Col: 7}: {Type: Rook, Color: White},
		{Row: 7, Col: 4}: {Type: King, Color: Black},
	}
	for pos, pc := range extra {
		pieces[pos] = pc
	}
	return pieces
}

func TestCastlingRule(t *testing.T) {
	kingSquare := Position{Row: 0, Col: 4}

	tests := []struct {
		name  string
		extra map[Position]Piece
		want  []Position
	}{
		{
			name: "both sides open",
			want: []Position{{Row: 0, Col: 2}, {Row: 0, Col: 6}},
		},
		{
			name:  "piece between king and queenside rook",
			extra: map[Position]Piece{{Row: 0, Col: 1}: {Type: Knight, Color: White}},
			want:  []Position{{Row: 0, Col: 6}},
		},
		{
			name:  "kingside transit square attacked",
			extra: map[Position]Piece{{Row: 7, Col: 5}: {Type: Rook, Color: Black}},
			want:  []Position{{Row: 0, Col: 2}},
		},
		{
			name:  "castling destination attacked",
			extra: map[Position]Piece{{Row: 7, Col: 6}: {Type: Rook, Color: Black}},
			want:  []Position{{Row: 0, Col: 2}},
		},
		{
			name:  "king in check",
			extra: map[Position]Piece{{Row: 7, Col: 4}: {Type: Rook, Color: Black}},
			want:  []Position{},
		},
		{
			name:  "queenside rook already moved",
			extra: map[Position]Piece{{Row: 0, Col: 0}: {Type: Rook, Color: White, Moved: true}},
			want:  []Position{{Row: 0, Col: 6}},
		},
		{
			name:  "king already moved",
			extra: map[Position]Piece{{Row: 0, Col: 4}: {Type: King, Color: White, Moved: true}},
			want:  []Position{},
		},
	}

	rule := CastlingRule{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameWith(castlePosition(tt.extra), White)
			got := commandTargets(rule.GetCommands(g, kingSquare))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("castle targets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCastlingMovesBothPieces(t *testing.T) {
	g := gameWith(castlePosition(nil), White)
	rule := CastlingRule{}

	for _, cmd := range rule.GetCommands(g, Position{Row: 0, Col: 4}) {
		next, ok := cmd.Apply(g)
		if !ok {
			t.Fatalf("castle command failed to apply")
		}
		kingPos, ok := next.Board.Find(King, White)
		if !ok {
			t.Fatalf("king missing after castling")
		}
		var rookDest Position
		switch kingPos.Col {
		case 6:
			rookDest = Position{Row: 0, Col: 5}
		case 2:
			rookDest = Position{Row: 0, Col: 3}
		default:
			t.Fatalf("king castled to unexpected square %v", kingPos)
		}
		rook, ok := next.Board.PieceAt(rookDest)
		if !ok || rook.Type != Rook || !rook.Moved {
			t.Errorf("rook not relocated to %v alongside the king", rookDest)
		}
		if _, ok := g.Board.PieceAt(Position{Row: 0, Col: 4}); !ok {
			t.Errorf("castling mutated the original game")
		}
	}
}

// Chess960 back ranks put kings and rooks on arbitrary files, so the
// castle's transit and landing squares can fall outside the interval
// between the two pieces, or coincide with their start squares.
func TestCastling960Layouts(t *testing.T) {
	tests := []struct {
		name     string
		pieces   map[Position]Piece
		king     Position
		want     []Position
		kingEnd  Position
		rookEnd  Position
	}{
		{
			name: "own piece on the king's long walk blocks the castle",
			pieces: map[Position]Piece{
				{Row: 0, Col: 1}: {Type: King, Color: White},
				{Row: 0, Col: 2}: {Type: Rook, Color: White},
				{Row: 0, Col: 3}: {Type: Queen, Color: White},
				{Row: 7, Col: 4}: {Type: King, Color: Black},
			},
			king: Position{Row: 0, Col: 1},
			want: []Position{},
		},
		{
			name: "king on b-file walks to g once the rank is clear",
			pieces: map[Position]Piece{
				{Row: 0, Col: 1}: {Type: King, Color: White},
				{Row: 0, Col: 2}: {Type: Rook, Color: White},
				{Row: 7, Col: 4}: {Type: King, Color: Black},
			},
			king:    Position{Row: 0, Col: 1},
			want:    []Position{{Row: 0, Col: 6}},
			kingEnd: Position{Row: 0, Col: 6},
			rookEnd: Position{Row: 0, Col: 5},
		},
		{
			name: "adjacent king and rook swap squares",
			pieces: map[Position]Piece{
				{Row: 0, Col: 5}: {Type: King, Color: White},
				{Row: 0, Col: 6}: {Type: Rook, Color: White},
				{Row: 7, Col: 4}: {Type: King, Color: Black},
			},
			king:    Position{Row: 0, Col: 5},
			want:    []Position{{Row: 0, Col: 6}},
			kingEnd: Position{Row: 0, Col: 6},
			rookEnd: Position{Row: 0, Col: 5},
		},
		{
			name: "king already on its destination square stays put",
			pieces: map[Position]Piece{
				{Row: 0, Col: 2}: {Type: King, Color: White},
				{Row: 0, Col: 0}: {Type: Rook, Color: White},
				{Row: 7, Col: 4}: {Type: King, Color: Black},
			},
			king:    Position{Row: 0, Col: 2},
			want:    []Position{{Row: 0, Col: 2}},
			kingEnd: Position{Row: 0, Col: 2},
			rookEnd: Position{Row: 0, Col: 3},
		},
	}

	rb := NewStandardRulebook()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gameWith(tt.pieces, White)
			rule := CastlingRule{}
			got := commandTargets(rule.GetCommands(g, tt.king))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("castle targets mismatch (-want +got):\n%s", diff)
			}
			if len(tt.want) == 0 {
				// The legality pipeline must not offer it either.
				for _, u := range rb.GetUpdates(g, tt.king) {
					if u.Destination() == (Position{Row: 0, Col: 6}) {
						t.Fatalf("blocked castle offered as a legal update")
					}
				}
				return
			}

			u := findUpdate(t, rb.GetUpdates(g, tt.king), tt.want[0])
			kingPos, ok := u.Game.Board.Find(King, White)
			if !ok || kingPos != tt.kingEnd {
				t.Errorf("king ended on %v; want %v", kingPos, tt.kingEnd)
			}
			rook, ok := u.Game.Board.PieceAt(tt.rookEnd)
			if !ok || rook.Type != Rook || !rook.Moved {
				t.Errorf("rook did not end on %v", tt.rookEnd)
			}
			occupied := 0
			for range u.Game.Board.Positions() {
				occupied++
			}
			if occupied != len(tt.pieces) {
				t.Errorf("castle changed the piece count to %d; want %d", occupied, len(tt.pieces))
			}
		})
	}
}

func TestCastlingSurvivesLegalityPipeline(t *testing.T) {
	rb := NewStandardRulebook()
	g := gameWith(castlePosition(nil), White)

	dests := updateDestinations(rb.GetUpdates(g, Position{Row: 0, Col: 4}))
	for _, want := range []Position{{Row: 0, Col: 2}, {Row: 0, Col: 6}} {
		found := false
		for _, d := range dests {
			if d == want {
				found = true
			}
		}
		if !found {
			t.Errorf("legal updates for the king are missing castle destination %v", want)
		}
	}
}

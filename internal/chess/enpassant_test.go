package chess

import "testing"

// Position with a white pawn on e5 and a black pawn still home on d7,
// kings on their starting squares, Black to move.
func enPassantGame() ChessGame {
	return gameWith(map[Position]Piece{
		{Row: 4, Col: 4}: {Type: Pawn, Color: White, Moved: true},
		{Row: 6, Col: 3}: {Type: Pawn, Color: Black},
		{Row: 0, Col: 4}: {Type: King, Color: White},
		{Row: 7, Col: 4}: {Type: King, Color: Black},
	}, Black)
}

func findUpdate(t *testing.T, updates []Update, dest Position) Update {
	t.Helper()
	for _, u := range updates {
		if u.Destination() == dest {
			return u
		}
	}
	t.Fatalf("no update with destination %v", dest)
	return Update{}
}

func TestEnPassantWindowOpensAfterDoubleStep(t *testing.T) {
	rb := NewStandardRulebook()
	g := enPassantGame()

	// Black plays d7-d5, landing beside the white pawn.
	afterDouble := findUpdate(t, rb.GetUpdates(g, Position{Row: 6, Col: 3}), Position{Row: 4, Col: 3}).Game

	captureSquare := Position{Row: 5, Col: 3}
	updates := rb.GetUpdates(afterDouble, Position{Row: 4, Col: 4})
	capture := findUpdate(t, updates, captureSquare)

	if _, ok := capture.Game.Board.PieceAt(Position{Row: 4, Col: 3}); ok {
		t.Errorf("passed pawn still on the board after en passant capture")
	}
	pc, ok := capture.Game.Board.PieceAt(captureSquare)
	if !ok || pc.Type != Pawn || pc.Color != White {
		t.Errorf("capturing pawn did not land on %v", captureSquare)
	}
}

func TestEnPassantWindowClosesAfterOnePly(t *testing.T) {
	rb := NewStandardRulebook()
	g := enPassantGame()

	afterDouble := findUpdate(t, rb.GetUpdates(g, Position{Row: 6, Col: 3}), Position{Row: 4, Col: 3}).Game

	// White declines the capture and shuffles the king; Black replies in
	// kind. The last-update record now describes king moves.
	afterWhiteKing := findUpdate(t, rb.GetUpdates(afterDouble, Position{Row: 0, Col: 4}), Position{Row: 0, Col: 3}).Game
	afterBlackKing := findUpdate(t, rb.GetUpdates(afterWhiteKing, Position{Row: 7, Col: 4}), Position{Row: 7, Col: 3}).Game

	for _, u := range rb.GetUpdates(afterBlackKing, Position{Row: 4, Col: 4}) {
		if u.Destination() == (Position{Row: 5, Col: 3}) {
			t.Errorf("en passant capture still offered one ply after the double step")
		}
	}
}

func TestEnPassantNotOfferedAfterSingleSteps(t *testing.T) {
	rb := NewStandardRulebook()
	g := enPassantGame()

	// d7-d6 then d6-d5 reaches the same squares without a double step.
	afterOne := findUpdate(t, rb.GetUpdates(g, Position{Row: 6, Col: 3}), Position{Row: 5, Col: 3}).Game
	afterWhiteKing := findUpdate(t, rb.GetUpdates(afterOne, Position{Row: 0, Col: 4}), Position{Row: 0, Col: 3}).Game
	afterTwo := findUpdate(t, rb.GetUpdates(afterWhiteKing, Position{Row: 5, Col: 3}), Position{Row: 4, Col: 3}).Game

	for _, u := range rb.GetUpdates(afterTwo, Position{Row: 4, Col: 4}) {
		if u.Destination() == (Position{Row: 5, Col: 3}) {
			t.Errorf("en passant offered against a pawn that arrived in single steps")
		}
	}
}

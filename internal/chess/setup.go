package chess

// standardBackRank is the classical piece order, queenside to kingside.
var standardBackRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// CreateGame builds the classical starting position with White to move.
func (rb StandardRulebook) CreateGame() ChessGame {
	return gameFromBackRanks(standardBackRank, standardBackRank)
}

func gameFromBackRanks(white, black [8]PieceType) ChessGame {
	b := NewBoard()
	for col, t := range white {
		b = b.Add(Position{Row: 0, Col: col}, Piece{Type: t, Color: White})
		b = b.Add(Position{Row: 1, Col: col}, Piece{Type: Pawn, Color: White})
	}
	for col, t := range black {
		b = b.Add(Position{Row: 7, Col: col}, Piece{Type: t, Color: Black})
		b = b.Add(Position{Row: 6, Col: col}, Piece{Type: Pawn, Color: Black})
	}
	return ChessGame{
		Board:  b,
		White:  Player{Color: White},
		Black:  Player{Color: Black},
		Active: White,
	}
}

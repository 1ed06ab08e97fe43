package chess

// Color is the side a piece or player belongs to.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the row direction this color's pawns advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// farRank is the promotion rank for this color.
func (c Color) farRank() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "unknown"
}

// Piece is an immutable occupant of a square. Moved carries castling and
// pawn double-step eligibility; Board.Move sets it on the relocated copy.
type Piece struct {
	Type  PieceType
	Color Color
	Moved bool
}

var (
	rookDirs   = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	bishopDirs = []Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}

	knightOffsets = []Position{
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
		{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
	}
	kingOffsets = []Position{
		{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1},
		{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1},
	}
)

// destinations generates the piece's unconstrained one-step reachable
// squares on b: own-occupied squares are excluded, sliding pieces stop at
// the first occupant, pawns advance forward and capture diagonally. Pawn
// moves onto the far rank are left to the promotion rule so a pawn never
// lands there unpromoted.
func (p Piece) destinations(from Position, b Board) []Position {
	switch p.Type {
	case Pawn:
		return p.pawnDestinations(from, b)
	case Knight:
		return p.leaps(from, b, knightOffsets)
	case Bishop:
		return p.slides(from, b, bishopDirs)
	case Rook:
		return p.slides(from, b, rookDirs)
	case Queen:
		return append(p.slides(from, b, bishopDirs), p.slides(from, b, rookDirs)...)
	case King:
		return p.leaps(from, b, kingOffsets)
	}
	return nil
}

func (p Piece) slides(from Position, b Board, dirs []Position) []Position {
	var dests []Position
	for _, dir := range dirs {
		target := from.offset(dir.Row, dir.Col)
		for target.valid() {
			occupant, occupied := b.PieceAt(target)
			if !occupied {
				dests = append(dests, target)
			} else {
				if occupant.Color != p.Color {
					dests = append(dests, target)
				}
				break
			}
			target = target.offset(dir.Row, dir.Col)
		}
	}
	return dests
}

func (p Piece) leaps(from Position, b Board, offsets []Position) []Position {
	var dests []Position
	for _, off := range offsets {
		target := from.offset(off.Row, off.Col)
		if !target.valid() {
			continue
		}
		if occupant, occupied := b.PieceAt(target); occupied && occupant.Color == p.Color {
			continue
		}
		dests = append(dests, target)
	}
	return dests
}

func (p Piece) pawnDestinations(from Position, b Board) []Position {
	var dests []Position
	fwd := p.Color.forward()
	far := p.Color.farRank()

	one := from.offset(fwd, 0)
	if one.valid() && one.Row != far {
		if _, occupied := b.PieceAt(one); !occupied {
			dests = append(dests, one)
			two := from.offset(2*fwd, 0)
			if !p.Moved && two.valid() {
				if _, occupied := b.PieceAt(two); !occupied {
					dests = append(dests, two)
				}
			}
		}
	}
	for _, dCol := range []int{-1, 1} {
		diag := from.offset(fwd, dCol)
		if !diag.valid() || diag.Row == far {
			continue
		}
		if occupant, occupied := b.PieceAt(diag); occupied && occupant.Color != p.Color {
			dests = append(dests, diag)
		}
	}
	return dests
}

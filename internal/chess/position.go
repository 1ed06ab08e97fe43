package chess

import "fmt"

// Position identifies a square by rank and file. Row 0 is White's back
// rank, row 7 is Black's.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) valid() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// index gives the row-major ordinal used for deterministic board iteration.
func (p Position) index() int {
	return p.Row*8 + p.Col
}

func (p Position) offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, p.Row+1)
}

package entity

// BoardWidth is the side of the square board.
const BoardWidth = 15

// Stone is a single placement. Coordinates are zero-based and are not checked
// until the stone is placed.
type Stone struct {
	Row     int  `json:"row"`
	Column  int  `json:"column"`
	IsBlack bool `json:"is_black"`
}

func NewStone(row, column int, isBlack bool) Stone {
	return Stone{Row: row, Column: column, IsBlack: isBlack}
}

// Cell is the content of one board square.
type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

func CellFromStone(stone Stone) Cell {
	if stone.IsBlack {
		return CellBlack
	}
	return CellWhite
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "X"
	case CellWhite:
		return "O"
	default:
		return "_"
	}
}

package entity

// Board is a read-only view of the squares, as handed to renderers.
type Board interface {
	Cell(row, column int) Cell
}

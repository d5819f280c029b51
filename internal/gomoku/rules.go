package gomoku

import "github.com/rocketscienceinc/gomoku-console/internal/entity"

// winNeighbours is how many same-colour stones must line up with the placed
// one. Longer lines do not count.
const winNeighbours = 4

// axes holds one direction per line; the opposite direction is its negation.
var axes = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal "\"
	{-1, 1}, // diagonal "/"
}

func onBoard(row, column int) bool {
	return row >= 0 && row < entity.BoardWidth && column >= 0 && column < entity.BoardWidth
}

// isWin only inspects lines through the stone just placed.
func isWin(board *[entity.BoardWidth][entity.BoardWidth]entity.Cell, stone entity.Stone) bool {
	cell := board[stone.Row][stone.Column]

	for _, axis := range axes {
		count := countLine(board, stone.Row, stone.Column, axis[0], axis[1], cell) +
			countLine(board, stone.Row, stone.Column, -axis[0], -axis[1], cell)
		if count == winNeighbours {
			return true
		}
	}

	return false
}

func countLine(board *[entity.BoardWidth][entity.BoardWidth]entity.Cell, row, column, deltaRow, deltaColumn int, cell entity.Cell) int {
	count := 0
	for r, c := row+deltaRow, column+deltaColumn; onBoard(r, c) && board[r][c] == cell; r, c = r+deltaRow, c+deltaColumn {
		count++
	}

	return count
}

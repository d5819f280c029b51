package gomoku

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/gomoku-console/internal/apperror"
	"github.com/rocketscienceinc/gomoku-console/internal/entity"
)

const boardCells = entity.BoardWidth * entity.BoardWidth

const (
	msgGameOver      = "Game is over."
	msgOffBoard      = "Stone is off the board."
	msgWrongPlayer   = "Wrong player."
	msgDuplicateMove = "Duplicate move."
	msgDraw          = "Game ends in a draw."
)

// Engine owns the board, the turn and the outcome of a single game.
// It is not safe for concurrent use.
type Engine struct {
	black *entity.Player
	white *entity.Player

	board  [entity.BoardWidth][entity.BoardWidth]entity.Cell
	stones []entity.Stone

	isBlacksTurn bool
	swapped      bool

	isOver bool
	winner *entity.Player
}

// NewEngine seats two players and flips for colours with a time-seeded source.
func NewEngine(first, second *entity.Player) *Engine {
	return NewEngineWithRand(first, second, rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint: gosec // it's ok
}

// NewEngineWithRand binds colours with a single coin flip from rng: the
// winner of the flip plays black and moves first.
func NewEngineWithRand(first, second *entity.Player, rng *rand.Rand) *Engine {
	black, white := first, second
	if rng.Intn(2) == 1 {
		black, white = second, first
	}

	return &Engine{
		black:        black,
		white:        white,
		stones:       make([]entity.Stone, 0, boardCells),
		isBlacksTurn: true,
	}
}

// Place validates and applies a stone. Rejected stones leave the engine unchanged.
func (that *Engine) Place(stone *entity.Stone) entity.Result {
	if result, ok := that.validateMove(stone); !ok {
		return result
	}

	that.board[stone.Row][stone.Column] = entity.CellFromStone(*stone)
	that.stones = append(that.stones, *stone)

	return that.updateGameStatus(*stone)
}

// Swap hands the move to the other player without changing the colour to play.
func (that *Engine) Swap() {
	that.swapped = !that.swapped
}

// validateMove - checks the stone in rule order, first failure wins.
func (that *Engine) validateMove(stone *entity.Stone) (entity.Result, bool) {
	switch {
	case that.isOver:
		return entity.Rejected(msgGameOver, apperror.ErrGameOver), false
	case stone == nil || !onBoard(stone.Row, stone.Column):
		return entity.Rejected(msgOffBoard, apperror.ErrOffBoard), false
	case stone.IsBlack != that.isBlacksTurn:
		return entity.Rejected(msgWrongPlayer, apperror.ErrWrongPlayer), false
	case that.board[stone.Row][stone.Column] != entity.CellEmpty:
		return entity.Rejected(msgDuplicateMove, apperror.ErrDuplicateMove), false
	}

	return entity.Result{}, true
}

// updateGameStatus - settles the game after a stone has been put down.
func (that *Engine) updateGameStatus(stone entity.Stone) entity.Result {
	if isWin(&that.board, stone) {
		that.isOver = true
		that.winner = that.Current()
		return entity.Success(that.winner.Name + " wins.")
	}

	if len(that.stones) == boardCells {
		that.isOver = true
		return entity.Success(msgDraw)
	}

	that.isBlacksTurn = !that.isBlacksTurn

	return entity.Success("")
}

// Stones returns a copy of the move history in placement order.
func (that *Engine) Stones() []entity.Stone {
	stones := make([]entity.Stone, len(that.stones))
	copy(stones, that.stones)

	return stones
}

// MoveCount is the number of stones on the board.
func (that *Engine) MoveCount() int {
	return len(that.stones)
}

// Cell reports the content of a square; off-board squares read as empty.
func (that *Engine) Cell(row, column int) entity.Cell {
	if !onBoard(row, column) {
		return entity.CellEmpty
	}
	return that.board[row][column]
}

// IsOver reports a win or a full board. No stone is accepted afterwards.
func (that *Engine) IsOver() bool {
	return that.isOver
}

// IsBlacksTurn reports whether the next stone must be black. Swap does not change it.
func (that *Engine) IsBlacksTurn() bool {
	return that.isBlacksTurn
}

// Current is the player holding the colour to move, inverted by Swap.
func (that *Engine) Current() *entity.Player {
	if that.isBlacksTurn != that.swapped {
		return that.black
	}
	return that.white
}

// Winner is nil until someone completes a line; it stays nil on a draw.
func (that *Engine) Winner() *entity.Player {
	return that.winner
}

// Black is the player who won the coin flip and moved first.
func (that *Engine) Black() *entity.Player {
	return that.black
}

// White is the player who lost the coin flip.
func (that *Engine) White() *entity.Player {
	return that.white
}

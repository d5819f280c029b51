package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-console/internal/entity"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out), out
}

type fakeBoard map[[2]int]entity.Cell

func (that fakeBoard) Cell(row, column int) entity.Cell {
	return that[[2]int{row, column}]
}

func TestConsole_ChoosePlayerKind(t *testing.T) {
	t.Run("Human and random", func(t *testing.T) {
		// Given: the user picks 1 then 2
		c, out := newTestConsole("1\n2\n")

		// When: two seats are asked for
		first, err := c.ChoosePlayerKind(1)
		require.NoError(t, err)
		second, err := c.ChoosePlayerKind(2)
		require.NoError(t, err)

		// Then: the kinds follow the answers
		assert.Equal(t, entity.PlayerHuman, first)
		assert.Equal(t, entity.PlayerRandom, second)
		assert.Contains(t, out.String(), "Player 1 is a:\n1. Human\n2. Random\nSelect [1-2]: ")
		assert.Contains(t, out.String(), "Player 2 is a:")
	})

	t.Run("Re-prompts on invalid input", func(t *testing.T) {
		// Given: garbage, an out of range number, then a valid choice
		c, out := newTestConsole("abc\n3\n2\n")

		// When: a seat is asked for
		kind, err := c.ChoosePlayerKind(1)

		// Then: the valid answer is used after two complaints
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerRandom, kind)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid Input, must be between 1 and 2"))
	})

	t.Run("End of input", func(t *testing.T) {
		// Given: no input at all
		c, _ := newTestConsole("")

		// When: a seat is asked for
		_, err := c.ChoosePlayerKind(1)

		// Then: ErrNoInput is returned
		require.ErrorIs(t, err, ErrNoInput)
	})
}

func TestConsole_AskName(t *testing.T) {
	// Given: an empty line, then a name with spaces around it
	c, out := newTestConsole("\n  Dori  \n")

	// When: a name is asked for
	name, err := c.AskName()

	// Then: the empty line is refused and the name trimmed
	require.NoError(t, err)
	assert.Equal(t, "Dori", name)
	assert.Contains(t, out.String(), "Input required!")
}

func TestConsole_AskCoordinates(t *testing.T) {
	t.Run("Valid coordinates", func(t *testing.T) {
		c, _ := newTestConsole("1\n15\n")

		row, column, err := c.AskCoordinates()

		require.NoError(t, err)
		assert.Equal(t, 1, row)
		assert.Equal(t, 15, column)
	})

	t.Run("Out of range row", func(t *testing.T) {
		c, out := newTestConsole("0\n16\n7\n8\n")

		row, column, err := c.AskCoordinates()

		require.NoError(t, err)
		assert.Equal(t, 7, row)
		assert.Equal(t, 8, column)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid Input, must be between 1 and 15"))
	})

	t.Run("Input ends before the column", func(t *testing.T) {
		c, _ := newTestConsole("3\n")

		_, _, err := c.AskCoordinates()

		require.ErrorIs(t, err, ErrNoInput)
	})
}

func TestConsole_AskReplay(t *testing.T) {
	c, out := newTestConsole("y\nn\nY\n")

	first, err := c.AskReplay()
	require.NoError(t, err)
	second, err := c.AskReplay()
	require.NoError(t, err)
	third, err := c.AskReplay()
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.True(t, third)
	assert.Contains(t, out.String(), "Play Again? [y/n]: ")
}

func TestConsole_RenderBoard(t *testing.T) {
	// Given: a board with a black stone top left and a white one bottom right
	c, out := newTestConsole("")
	board := fakeBoard{
		{0, 0}:   entity.CellBlack,
		{14, 14}: entity.CellWhite,
	}

	// When: the board is rendered
	c.RenderBoard(board)

	// Then: a header and fifteen numbered rows are printed
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, entity.BoardWidth+1)
	assert.Equal(t, "   01 02 03 04 05 06 07 08 09 10 11 12 13 14 15", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "01 X  _ "))
	assert.True(t, strings.HasPrefix(lines[15], "15 _ "))
	assert.True(t, strings.HasSuffix(lines[15], " O "))
}

func TestConsole_Welcome(t *testing.T) {
	c, out := newTestConsole("")

	c.Welcome()
	c.Show("Dori's turn.")

	assert.Equal(t, "Welcome to Gomoku\n=================\n\nDori's turn.\n", out.String())
}

func TestConsole_ShowScoreboard(t *testing.T) {
	t.Run("After a win", func(t *testing.T) {
		// Given: a winner with a tally and two recent matches
		c, out := newTestConsole("")
		scoreboard := &entity.Scoreboard{
			Player: "Dori",
			Wins:   3,
			Draws:  1,
			Recent: []*entity.MatchOutcome{
				{Black: "Dori", White: "Nemo", Winner: "Dori", Moves: 9},
				{Black: "Nemo", White: "Dori", Moves: 225},
			},
		}

		// When: the scoreboard is shown
		c.ShowScoreboard(scoreboard)

		// Then: the wins, the draws and one line per match are printed
		assert.Equal(t, "Scoreboard\n----------\n"+
			"Dori has won 3 time(s).\n"+
			"Draws so far: 1\n"+
			"Recent matches:\n"+
			"  Dori (X) vs Nemo (O): Dori won in 9 moves\n"+
			"  Nemo (X) vs Dori (O): draw after 225 moves\n\n", out.String())
	})

	t.Run("After a draw with no history", func(t *testing.T) {
		// Given: no winner and nothing recent
		c, out := newTestConsole("")

		// When: the scoreboard is shown
		c.ShowScoreboard(&entity.Scoreboard{Draws: 2})

		// Then: only the draw tally is printed
		assert.Equal(t, "Scoreboard\n----------\nDraws so far: 2\n\n", out.String())
	})
}

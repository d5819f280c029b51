package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/gomoku-console/internal/entity"
)

var ErrNoInput = errors.New("no more input")

// Console is the line based front end. Coordinates are 1-based on screen.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (that *Console) Welcome() {
	that.printf("Welcome to Gomoku\n=================\n\n")
}

func (that *Console) Show(message string) {
	that.printf("%s\n", message)
}

// ChoosePlayerKind - asks what kind of player seat number is.
func (that *Console) ChoosePlayerKind(number int) (entity.PlayerKind, error) {
	prompt := fmt.Sprintf("Player %d is a:\n1. Human\n2. Random\nSelect [1-2]: ", number)

	choice, err := that.promptInt(prompt, 1, 2)
	if err != nil {
		return entity.PlayerHuman, err
	}

	if choice == 2 {
		return entity.PlayerRandom, nil
	}

	return entity.PlayerHuman, nil
}

func (that *Console) AskName() (string, error) {
	for {
		name, err := that.prompt("\nPlease enter a name: ")
		if err != nil {
			return "", err
		}

		if name != "" {
			that.printf("\n")
			return name, nil
		}

		that.printf("Input required!\n")
	}
}

// AskCoordinates - returns the 1-based row and column typed by the player.
func (that *Console) AskCoordinates() (int, int, error) {
	row, err := that.promptInt("Enter a row: ", 1, entity.BoardWidth)
	if err != nil {
		return 0, 0, err
	}

	column, err := that.promptInt("Enter a column: ", 1, entity.BoardWidth)
	if err != nil {
		return 0, 0, err
	}

	return row, column, nil
}

func (that *Console) AskReplay() (bool, error) {
	answer, err := that.prompt("Play Again? [y/n]: ")
	if err != nil {
		return false, err
	}

	return strings.EqualFold(answer, "y"), nil
}

func (that *Console) RenderBoard(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("  ")
	for column := 1; column <= entity.BoardWidth; column++ {
		fmt.Fprintf(&sb, " %02d", column)
	}
	sb.WriteString("\n")

	for row := 0; row < entity.BoardWidth; row++ {
		fmt.Fprintf(&sb, "%02d", row+1)
		for column := 0; column < entity.BoardWidth; column++ {
			fmt.Fprintf(&sb, " %s ", board.Cell(row, column))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

// ShowScoreboard - prints the tally after a match, a draw leaves out the winner's line.
func (that *Console) ShowScoreboard(scoreboard *entity.Scoreboard) {
	var sb strings.Builder

	sb.WriteString("Scoreboard\n----------\n")
	if scoreboard.Player != "" {
		fmt.Fprintf(&sb, "%s has won %d time(s).\n", scoreboard.Player, scoreboard.Wins)
	}
	fmt.Fprintf(&sb, "Draws so far: %d\n", scoreboard.Draws)

	if len(scoreboard.Recent) > 0 {
		sb.WriteString("Recent matches:\n")
	}
	for _, match := range scoreboard.Recent {
		fmt.Fprintf(&sb, "  %s (X) vs %s (O): ", match.Black, match.White)
		if match.IsDraw() {
			fmt.Fprintf(&sb, "draw after %d moves\n", match.Moves)
			continue
		}
		fmt.Fprintf(&sb, "%s won in %d moves\n", match.Winner, match.Moves)
	}
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func (that *Console) promptInt(message string, low, high int) (int, error) {
	for {
		answer, err := that.prompt(message)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(answer)
		if err == nil && value >= low && value <= high {
			return value, nil
		}

		that.printf("Invalid Input, must be between %d and %d\n", low, high)
	}
}

func (that *Console) prompt(message string) (string, error) {
	that.printf("%s", message)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", ErrNoInput
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

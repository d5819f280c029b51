package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gomoku-console/internal/config"
	"github.com/rocketscienceinc/gomoku-console/internal/entity"
	"github.com/rocketscienceinc/gomoku-console/internal/gomoku"
)

var (
	ErrTooManyAttempts = errors.New("random player could not find a free square")
	ErrMatchFinished   = errors.New("match is already finished")
)

const (
	playersPerMatch = 2
	recentMatches   = 5
)

type frontend interface {
	Welcome()
	Show(message string)
	ChoosePlayerKind(number int) (entity.PlayerKind, error)
	AskName() (string, error)
	AskCoordinates() (int, int, error)
	AskReplay() (bool, error)
	RenderBoard(board entity.Board)
	ShowScoreboard(scoreboard *entity.Scoreboard)
}

type matchRepo interface {
	Record(ctx context.Context, outcome *entity.MatchOutcome) error
	Wins(ctx context.Context, name string) (int64, error)
	Draws(ctx context.Context) (int64, error)
	Recent(ctx context.Context, n int64) ([]*entity.MatchOutcome, error)
}

// GameManager runs matches between two seats of a front end.
type GameManager struct {
	logger    *slog.Logger
	ui        frontend
	matchRepo matchRepo

	maxRandomAttempts int
	rng               *rand.Rand
	now               func() time.Time
}

// NewGameManager - matchRepo may be nil, then outcomes are not recorded.
// A nil rng gets a time-seeded source.
func NewGameManager(logger *slog.Logger, ui frontend, matchRepo matchRepo, conf config.Game, rng *rand.Rand) *GameManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		ui:        ui,
		matchRepo: matchRepo,

		maxRandomAttempts: conf.MaxRandomAttempts,
		rng:               rng,
		now:               time.Now,
	}
}

// Run - plays matches until the user declines a replay.
func (that *GameManager) Run(ctx context.Context) error {
	that.ui.Welcome()

	for {
		engine, err := that.NewMatch(ctx)
		if err != nil {
			return fmt.Errorf("failed to set up match: %w", err)
		}

		if _, err = that.PlayMatch(ctx, engine); err != nil {
			return fmt.Errorf("failed to play match: %w", err)
		}

		again, err := that.ui.AskReplay()
		if err != nil {
			return fmt.Errorf("failed to ask for replay: %w", err)
		}

		if !again {
			return nil
		}

		that.ui.Show("")
	}
}

// NewMatch - seats two players and flips for colours.
func (that *GameManager) NewMatch(ctx context.Context) (*gomoku.Engine, error) {
	players := make([]*entity.Player, 0, playersPerMatch)
	for number := 1; number <= playersPerMatch; number++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		player, err := that.choosePlayer(number)
		if err != nil {
			return nil, err
		}

		players = append(players, player)
	}

	engine := gomoku.NewEngineWithRand(players[0], players[1], that.rng)

	that.ui.Show("\n(Randomizing)\n")
	that.ui.Show(fmt.Sprintf("%s plays black and goes first.\n\n", engine.Black().Name))

	that.logger.Info("match started", "black", engine.Black().Name, "white", engine.White().Name)

	return engine, nil
}

func (that *GameManager) choosePlayer(number int) (*entity.Player, error) {
	kind, err := that.ui.ChoosePlayerKind(number)
	if err != nil {
		return nil, fmt.Errorf("failed to choose player %d: %w", number, err)
	}

	switch kind {
	case entity.PlayerRandom:
		player := entity.NewRandomPlayer(rand.New(rand.NewSource(that.rng.Int63()))) //nolint: gosec // it's ok
		that.ui.Show(fmt.Sprintf("\nPlayer name is: %s", player.Name))

		return player, nil
	default:
		name, err := that.ui.AskName()
		if err != nil {
			return nil, fmt.Errorf("failed to get name of player %d: %w", number, err)
		}

		return entity.NewHumanPlayer(name), nil
	}
}

// PlayMatch - drives the engine until the game is over and returns the final result.
func (that *GameManager) PlayMatch(ctx context.Context, engine *gomoku.Engine) (entity.Result, error) {
	log := that.logger.With("method", "PlayMatch")

	if engine.IsOver() {
		return entity.Result{}, ErrMatchFinished
	}

	var result entity.Result
	attempts := 0

	for !engine.IsOver() {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("match interrupted: %w", err)
		}

		current := engine.Current()
		if attempts == 0 {
			that.ui.Show(current.Name + "'s turn.")
		}

		stone, err := that.nextStone(engine, current)
		if err != nil {
			return result, err
		}

		result = engine.Place(&stone)
		if !result.IsSuccess {
			attempts++
			log.Debug("move rejected", "player", current.Name, "row", stone.Row, "column", stone.Column, "error", result.Err)

			if current.IsHuman() {
				that.ui.Show(result.Message)
			} else if that.maxRandomAttempts > 0 && attempts >= that.maxRandomAttempts {
				return result, fmt.Errorf("%w: %s after %d attempts", ErrTooManyAttempts, current.Name, attempts)
			}

			continue
		}

		attempts = 0
		that.ui.RenderBoard(engine)
	}

	that.ui.Show(result.Message)

	if outcome, ok := that.recordOutcome(ctx, engine); ok {
		that.showScoreboard(ctx, outcome)
	}

	return result, nil
}

// nextStone - asks the player for a move, falling back to the console for people.
func (that *GameManager) nextStone(engine *gomoku.Engine, current *entity.Player) (entity.Stone, error) {
	if stone, ok := current.GenerateMove(engine.Stones()); ok {
		return stone, nil
	}

	row, column, err := that.ui.AskCoordinates()
	if err != nil {
		return entity.Stone{}, fmt.Errorf("failed to get move of %s: %w", current.Name, err)
	}

	return entity.NewStone(row-1, column-1, engine.IsBlacksTurn()), nil
}

// recordOutcome - reports whether the outcome reached the repository.
func (that *GameManager) recordOutcome(ctx context.Context, engine *gomoku.Engine) (*entity.MatchOutcome, bool) {
	log := that.logger.With("method", "recordOutcome")

	outcome := &entity.MatchOutcome{
		ID:         uuid.NewString(),
		Black:      engine.Black().Name,
		White:      engine.White().Name,
		Moves:      engine.MoveCount(),
		FinishedAt: that.now().UTC(),
	}
	if winner := engine.Winner(); winner != nil {
		outcome.Winner = winner.Name
	}

	log.Info("match finished", "id", outcome.ID, "winner", outcome.Winner, "moves", outcome.Moves)

	if that.matchRepo == nil {
		return outcome, false
	}

	if err := that.matchRepo.Record(ctx, outcome); err != nil {
		log.Error("failed to record match", "id", outcome.ID, "error", err)
		return outcome, false
	}

	return outcome, true
}

// showScoreboard - hands the winner's tally, the draws and the latest matches to the front end.
func (that *GameManager) showScoreboard(ctx context.Context, outcome *entity.MatchOutcome) {
	log := that.logger.With("method", "showScoreboard")

	scoreboard := &entity.Scoreboard{Player: outcome.Winner}

	if !outcome.IsDraw() {
		wins, err := that.matchRepo.Wins(ctx, outcome.Winner)
		if err != nil {
			log.Error("failed to get wins", "player", outcome.Winner, "error", err)
			return
		}
		scoreboard.Wins = wins
	}

	draws, err := that.matchRepo.Draws(ctx)
	if err != nil {
		log.Error("failed to get draws", "error", err)
		return
	}
	scoreboard.Draws = draws

	recent, err := that.matchRepo.Recent(ctx, recentMatches)
	if err != nil {
		log.Error("failed to get recent matches", "error", err)
		return
	}
	scoreboard.Recent = recent

	that.ui.ShowScoreboard(scoreboard)
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gomoku-console/internal/entity"
)

var ErrMatchNotFound = errors.New("match not found")

const (
	winsKey    = "scoreboard:wins"
	drawsKey   = "scoreboard:draws"
	matchesKey = "scoreboard:matches"
)

type MatchRepository interface {
	Record(ctx context.Context, outcome *entity.MatchOutcome) error
	GetByID(ctx context.Context, id string) (*entity.MatchOutcome, error)
	Wins(ctx context.Context, name string) (int64, error)
	Draws(ctx context.Context) (int64, error)
	Recent(ctx context.Context, n int64) ([]*entity.MatchOutcome, error)
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

// Record - stores the outcome and bumps the tallies in one transaction.
func (that *dbMatch) Record(ctx context.Context, outcome *entity.MatchOutcome) error {
	outcomeJSON, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey(outcome.ID), outcomeJSON, 0)
		pipe.LPush(ctx, matchesKey, outcome.ID)

		if outcome.IsDraw() {
			pipe.Incr(ctx, drawsKey)
		} else {
			pipe.HIncrBy(ctx, winsKey, outcome.Winner, 1)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.MatchOutcome, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.MatchOutcome{}, ErrMatchNotFound
	}

	if err != nil {
		return &entity.MatchOutcome{}, fmt.Errorf("failed to get match by ID: %w", err)
	}

	var outcome entity.MatchOutcome
	if err = json.Unmarshal([]byte(response), &outcome); err != nil {
		return &entity.MatchOutcome{}, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &outcome, nil
}

func (that *dbMatch) Wins(ctx context.Context, name string) (int64, error) {
	wins, err := that.client.HGet(ctx, winsKey, name).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get wins: %w", err)
	}

	return wins, nil
}

func (that *dbMatch) Draws(ctx context.Context) (int64, error) {
	draws, err := that.client.Get(ctx, drawsKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get draws: %w", err)
	}

	return draws, nil
}

// Recent - returns up to n outcomes, newest first.
func (that *dbMatch) Recent(ctx context.Context, n int64) ([]*entity.MatchOutcome, error) {
	if n <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, matchesKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	outcomes := make([]*entity.MatchOutcome, 0, len(ids))
	for _, id := range ids {
		outcome, err := that.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load match %s: %w", id, err)
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func matchKey(id string) string {
	return "match:" + id
}

package entity

import (
	"fmt"
	"math/rand"
	"time"
)

type PlayerKind int

const (
	PlayerHuman PlayerKind = iota
	PlayerRandom
)

func (k PlayerKind) String() string {
	switch k {
	case PlayerHuman:
		return "human"
	case PlayerRandom:
		return "random"
	default:
		return fmt.Sprintf("PlayerKind(%d)", int(k))
	}
}

// Player supplies a display name and, for non-interactive kinds, moves.
// The set of kinds is closed; behaviour is selected by switching on Kind.
type Player struct {
	Kind PlayerKind
	Name string

	rng *rand.Rand
}

func NewHumanPlayer(name string) *Player {
	return &Player{
		Kind: PlayerHuman,
		Name: name,
	}
}

// NewRandomPlayer creates a player that moves uniformly at random. A nil rng
// gets a time-seeded source of its own.
func NewRandomPlayer(rng *rand.Rand) *Player {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &Player{
		Kind: PlayerRandom,
		Name: randomName(rng),
		rng:  rng,
	}
}

func (that *Player) IsHuman() bool {
	return that.Kind == PlayerHuman
}

// GenerateMove returns false when the move has to come from elsewhere (a
// person at the console). Generated moves are not checked for legality.
func (that *Player) GenerateMove(previous []Stone) (Stone, bool) {
	switch that.Kind {
	case PlayerRandom:
		isBlack := true
		if len(previous) > 0 {
			isBlack = !previous[len(previous)-1].IsBlack
		}

		return NewStone(that.rng.Intn(BoardWidth), that.rng.Intn(BoardWidth), isBlack), true
	default:
		return Stone{}, false
	}
}

func (that *Player) String() string {
	return that.Name
}

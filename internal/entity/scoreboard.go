package entity

// Scoreboard is the tally shown after a recorded match. Player is the
// winner of that match and stays empty after a draw.
type Scoreboard struct {
	Player string
	Wins   int64
	Draws  int64
	Recent []*MatchOutcome
}

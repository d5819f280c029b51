package entity

import "time"

// MatchOutcome is the record of a finished match. Winner is empty on a draw.
type MatchOutcome struct {
	ID         string    `json:"id"`
	Black      string    `json:"black"`
	White      string    `json:"white"`
	Winner     string    `json:"winner,omitempty"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *MatchOutcome) IsDraw() bool {
	return that.Winner == ""
}

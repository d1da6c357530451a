package game

import "sort"

// EndReason records why a game finished.
type EndReason string

const (
	EndReasonScore EndReason = "score"
	EndReasonTime  EndReason = "time"
)

// Standing is one row of the final leaderboard.
type Standing struct {
	Rank  int    `json:"rank"`
	Seat  int    `json:"seat"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rolls int    `json:"rolls"`
}

// GameResult is the outcome of a finished game.
type GameResult struct {
	Winner    PlayerState `json:"winner"`
	Reason    EndReason   `json:"reason"`
	Tied      bool        `json:"tied,omitempty"`
	Turns     int         `json:"turns"`
	Standings []Standing  `json:"standings"`
}

// Standings ranks players by committed score, highest first. Equal scores
// keep seat order and share a rank.
func Standings(players []PlayerState) []Standing {
	ordered := make([]PlayerState, len(players))
	copy(ordered, players)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Seat < ordered[j].Seat
	})
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Score > ordered[j].Score
	})

	standings := make([]Standing, len(ordered))
	for i, p := range ordered {
		rank := i + 1
		if i > 0 && p.Score == ordered[i-1].Score {
			rank = standings[i-1].Rank
		}
		standings[i] = Standing{
			Rank:  rank,
			Seat:  p.Seat,
			Name:  p.Name,
			Score: p.Score,
			Rolls: p.Rolls,
		}
	}
	return standings
}

package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult is the outcome of one simulated game
type GameResult struct {
	Seed         int64 // RNG seed for this game (for replay)
	Players      int   // Number of seats
	StartingSeat int   // Seat that took the first turn (1-based)
	WinnerSeat   int   // Seat that won (1-based)
	WinningScore int
	Margin       int // Winner's score minus the runner-up's
	Turns        int
	Rolls        int // Rolls by all players
}

// Sample accumulates a series of values
type Sample struct {
	N      int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation
}

// Add records v
func (s *Sample) Add(v float64) {
	s.N++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean
func (s *Sample) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s *Sample) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
}

// StdDev returns the sample standard deviation
func (s *Sample) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean
func (s *Sample) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Sample) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value
func (s *Sample) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Sample) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Statistics aggregates simulated games
type Statistics struct {
	Games          int
	SeatWins       []int // Index 0 is seat 1
	FirstMoverWins int   // Games won by the seat that rolled first

	WinningScore Sample
	Margin       Sample
	Turns        Sample
	Rolls        Sample
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	s.Games++

	for len(s.SeatWins) < result.Players {
		s.SeatWins = append(s.SeatWins, 0)
	}
	if result.WinnerSeat >= 1 && result.WinnerSeat <= len(s.SeatWins) {
		s.SeatWins[result.WinnerSeat-1]++
	}
	if result.WinnerSeat == result.StartingSeat {
		s.FirstMoverWins++
	}

	s.WinningScore.Add(float64(result.WinningScore))
	s.Margin.Add(float64(result.Margin))
	s.Turns.Add(float64(result.Turns))
	s.Rolls.Add(float64(result.Rolls))
}

// WinRate returns the fraction of games won by seat (1-based)
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 || seat < 1 || seat > len(s.SeatWins) {
		return 0
	}
	return float64(s.SeatWins[seat-1]) / float64(s.Games)
}

// FirstMoverRate returns the fraction of games won by the player who started
func (s *Statistics) FirstMoverRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.FirstMoverWins) / float64(s.Games)
}

// Validate checks the counts agree with each other
func (s *Statistics) Validate() error {
	if s.Games < 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	wins := 0
	for _, w := range s.SeatWins {
		wins += w
	}
	if wins != s.Games {
		return fmt.Errorf("seat wins (%d) don't match games (%d)", wins, s.Games)
	}

	if s.FirstMoverWins > s.Games {
		return fmt.Errorf("first mover wins (%d) exceed games (%d)", s.FirstMoverWins, s.Games)
	}

	for name, sample := range map[string]*Sample{
		"winning score": &s.WinningScore,
		"margin":        &s.Margin,
		"turns":         &s.Turns,
		"rolls":         &s.Rolls,
	} {
		if sample.N != s.Games || len(sample.Values) != s.Games {
			return fmt.Errorf("%s sample size (%d) doesn't match games (%d)", name, sample.N, s.Games)
		}
	}

	return nil
}

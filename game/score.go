package game

import (
	"fmt"
	"strconv"
)

type outcome int8

const (
	lost outcome = iota - 1
	undecided
	won
)

// Score orders positions from the maximizing player's point of view. Win
// and Loss are outcomes, not numbers, so they sort above and below every
// material value and never take part in arithmetic.
type Score struct {
	outcome outcome
	value   int
}

var (
	Win  = Score{outcome: won}
	Loss = Score{outcome: lost}
)

// Value wraps a material balance.
func Value(n int) Score {
	return Score{value: n}
}

// Compare returns -1, 0 or +1 when s sorts below, equal to or above other.
func (s Score) Compare(other Score) int {
	switch {
	case s.outcome < other.outcome:
		return -1
	case s.outcome > other.outcome:
		return 1
	case s.outcome != undecided:
		return 0
	case s.value < other.value:
		return -1
	case s.value > other.value:
		return 1
	default:
		return 0
	}
}

func (s Score) Less(other Score) bool {
	return s.Compare(other) < 0
}

func (s Score) Greater(other Score) bool {
	return s.Compare(other) > 0
}

// IsDecided reports whether the score is a Win or a Loss.
func (s Score) IsDecided() bool {
	return s.outcome != undecided
}

// Material returns the material balance and false for decided scores.
func (s Score) Material() (int, bool) {
	return s.value, s.outcome == undecided
}

func (s Score) String() string {
	switch s.outcome {
	case won:
		return "win"
	case lost:
		return "loss"
	default:
		return strconv.Itoa(s.value)
	}
}

func (s Score) GoString() string {
	return fmt.Sprintf("game.Score(%s)", s)
}

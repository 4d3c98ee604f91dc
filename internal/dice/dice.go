package dice

import (
	"fmt"

	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
)

// RollResult contains detailed information about a dice roll
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Sum of dice without bonus
}

func (r *RollResult) String() string {
	return fmt.Sprintf("%dd%d+%d %v = %d", r.Count, r.Sides, r.Bonus, r.Rolls, r.Total)
}

func validate(count, sides int) error {
	if count < 1 {
		return rgerr.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return rgerr.InvalidArgumentf("invalid dice size %d", sides)
	}
	return nil
}

// WeightedIndex picks an index into weights with probability proportional to
// its weight. It rolls a single die with as many sides as the weights sum to
// and walks the cumulative totals, so [50, 35, 15] is a d100.
func WeightedIndex(r Roller, weights []int) (int, error) {
	total := 0
	for i, w := range weights {
		if w < 0 {
			return 0, rgerr.InvalidArgumentf("weight %d at index %d is negative", w, i)
		}
		total += w
	}
	if total == 0 {
		return 0, rgerr.InvalidArgument("weights must not all be zero")
	}

	result, err := r.Roll(1, total, 0)
	if err != nil {
		return 0, err
	}

	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if result.RawTotal <= cumulative {
			return i, nil
		}
	}

	return 0, rgerr.Internalf("roll %d exceeded weight total %d", result.RawTotal, total)
}

// CoinFlip is a fair 1d2; heads is a 1
func CoinFlip(r Roller) (bool, error) {
	result, err := r.Roll(1, 2, 0)
	if err != nil {
		return false, err
	}
	return result.RawTotal == 1, nil
}

// Pick returns a uniform index in [0, n)
func Pick(r Roller, n int) (int, error) {
	result, err := r.Roll(1, n, 0)
	if err != nil {
		return 0, err
	}
	return result.RawTotal - 1, nil
}

package dice

import (
	"math/rand"
	"sync"
)

// randomRoller implements Roller on top of math/rand
type randomRoller struct {
	mu   sync.Mutex
	intn func(n int) int
}

// NewRandomRoller creates a roller backed by the global random source
func NewRandomRoller() Roller {
	return &randomRoller{intn: rand.Intn}
}

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{intn: rand.New(rand.NewSource(seed)).Intn}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	rawTotal := 0
	for i := 0; i < count; i++ {
		rolls[i] = r.intn(sides) + 1
		rawTotal += rolls[i]
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

package entities

// Effect names a timed status effect
type Effect string

const (
	EffectPoison  Effect = "Poison"
	EffectBleed   Effect = "Bleed"
	EffectShell   Effect = "Shell"
	EffectBerserk Effect = "Berserk"
	EffectBuff    Effect = "Buff"
	EffectSnared  Effect = "Snared"
)

// CharacterEffects are the keys every character status carries, in tick order
var CharacterEffects = []Effect{EffectPoison, EffectBleed, EffectShell, EffectBerserk}

// MonsterEffects are the keys every monster status carries, in tick order
var MonsterEffects = []Effect{EffectBuff, EffectSnared}

// Status maps an effect to its remaining duration in ticks. Zero is inactive.
type Status map[Effect]int

// NewCharacterStatus returns a status with every character effect inactive
func NewCharacterStatus() Status {
	return newStatus(CharacterEffects)
}

// NewMonsterStatus returns a status with every monster effect inactive
func NewMonsterStatus() Status {
	return newStatus(MonsterEffects)
}

func newStatus(keys []Effect) Status {
	s := make(Status, len(keys))
	for _, k := range keys {
		s[k] = 0
	}
	return s
}

// Active reports whether the effect has time remaining
func (s Status) Active(e Effect) bool {
	return s[e] > 0
}

// Add extends an effect by the given number of ticks
func (s Status) Add(e Effect, ticks int) {
	if ticks <= 0 {
		return
	}
	s[e] += ticks
}

// Tick decrements every active effect once, following order for
// determinism, and returns the effects that reached zero on this tick.
// Keys missing from order are ticked after it in no particular order.
func (s Status) Tick(order []Effect) []Effect {
	var expired []Effect
	seen := make(map[Effect]bool, len(order))

	tick := func(e Effect) {
		if s[e] <= 0 {
			return
		}
		s[e]--
		if s[e] == 0 {
			expired = append(expired, e)
		}
	}

	for _, e := range order {
		seen[e] = true
		tick(e)
	}
	for e := range s {
		if !seen[e] {
			tick(e)
		}
	}

	return expired
}

// Reset sets every duration to zero
func (s Status) Reset() {
	for e := range s {
		s[e] = 0
	}
}

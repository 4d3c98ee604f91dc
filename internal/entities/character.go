package entities

// Stance selects the character's move-set
type Stance string

const (
	StanceBear   Stance = "Bear"
	StanceTurtle Stance = "Turtle"
	StanceSnake  Stance = "Snake"
)

// Item is a consumable kept in the character's inventory
type Item string

const (
	ItemHealthPot Item = "Health Pots"
	ItemShard     Item = "Shards"
)

// Items lists consumables in display order
var Items = []Item{ItemHealthPot, ItemShard}

// Position is a board coordinate
type Position struct {
	X int
	Y int
}

// MaxLevel is the highest level a character can reach
const MaxLevel = 3

// Character persists across battles for the whole run
type Character struct {
	Name       string
	Title      string
	Level      int
	Experience int

	Health        int
	CurrentHealth int
	Ki            int
	CurrentKi     int

	// DefenseModifier is the baseline incoming damage multiplier;
	// ActiveDefenseModifier is what attacks actually use.
	DefenseModifier       float64
	DamageModifier        float64
	ActiveDefenseModifier float64

	Crystals  int
	Items     map[Item]int
	Equipment map[Slot]*Equipment
	Status    Status

	Stances      []Stance
	ActiveStance Stance
	Position     Position
}

// HasStance reports whether the stance is unlocked
func (c *Character) HasStance(s Stance) bool {
	for _, unlocked := range c.Stances {
		if unlocked == s {
			return true
		}
	}
	return false
}

// AvailableItems lists the items with a nonzero quantity, in display order
func (c *Character) AvailableItems() []Item {
	var available []Item
	for _, item := range Items {
		if c.Items[item] > 0 {
			available = append(available, item)
		}
	}
	return available
}

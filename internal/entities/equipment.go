package entities

// Slot is an equipment slot
type Slot string

const (
	SlotHelmet Slot = "Helmet"
	SlotArmour Slot = "Armour"
	SlotRing   Slot = "Ring"
	SlotAmulet Slot = "Amulet"
)

// Slots lists the equipment slots in display order
var Slots = []Slot{SlotHelmet, SlotArmour, SlotRing, SlotAmulet}

// BoostsDefense reports whether gear in this slot adds to the defense modifier.
// Every other slot adds to the damage modifier.
func (s Slot) BoostsDefense() bool {
	return s == SlotHelmet || s == SlotArmour
}

// Equipment is one piece of merchant gear
type Equipment struct {
	Slot     Slot    `json:"slot"`
	Name     string  `json:"name"`
	Modifier float64 `json:"modifier"`
}

package entities

// Archetype is a monster species, the key into the attack catalog
type Archetype string

// Monster is created per encounter and discarded when the battle ends
type Monster struct {
	// Name is what the transcript calls the monster
	Name           string
	Archetype      Archetype
	Health         int
	CurrentHealth  int
	DamageModifier float64
	HealthModifier float64
	Status         Status
}

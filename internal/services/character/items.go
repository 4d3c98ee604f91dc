package character

import (
	"fmt"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
)

// UseItem consumes one item. An empty stack is refused and nothing changes.
func (s *service) UseItem(c *entities.Character, item entities.Item) (string, error) {
	switch item {
	case entities.ItemHealthPot, entities.ItemShard:
	default:
		return "", rgerr.InvalidArgumentf("unknown item %q", item)
	}

	if c.Items[item] <= 0 {
		return "", rgerr.InsufficientResourcef("no %s left", item).WithMeta("item", string(item))
	}
	c.Items[item]--

	if item == entities.ItemHealthPot {
		c.CurrentHealth = min(c.Health, c.CurrentHealth+healthPotRestore)
		return fmt.Sprintf("You used a Health Potion and restored %d health!", healthPotRestore), nil
	}

	c.CurrentKi = min(c.Ki, c.CurrentKi+shardRestore)
	return fmt.Sprintf("You used a Shard and restored %d Ki!", shardRestore), nil
}

// RestAtHotSpring fully restores Health and Ki
func (s *service) RestAtHotSpring(c *entities.Character) string {
	c.CurrentHealth = c.Health
	c.CurrentKi = c.Ki
	return fmt.Sprintf("You relax in the warm spring. Your wounds heal and your ki is restored!\nHealth: %d/%d\nKi: %d/%d",
		c.CurrentHealth, c.Health, c.CurrentKi, c.Ki)
}

// CollectMinerals adds Health Pots and Shards
func (s *service) CollectMinerals(c *entities.Character) string {
	if c.Items == nil {
		c.Items = make(map[entities.Item]int, len(entities.Items))
	}
	c.Items[entities.ItemHealthPot] += mineralPots
	c.Items[entities.ItemShard] += mineralShards
	return fmt.Sprintf("You collected minerals from around the spring!\nGained: %d Health Potion(s) and %d Shard(s)",
		mineralPots, mineralShards)
}

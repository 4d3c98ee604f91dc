package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	"github.com/KirkDiggler/reapers-guild/internal/game"
)

const boxWidth = 50

func rule(left, right string) string {
	return left + strings.Repeat("─", boxWidth) + right
}

// AskEquipment prints the merchant's table and returns the chosen offer index
func (t *Terminal) AskEquipment(ctx context.Context, offers []entities.Equipment) (int, error) {
	t.println("Merchant: 'I have some fine wares for an adventurer like yourself!'")
	t.println(rule("┌", "┐"))
	t.println("│ #  ITEM TYPE     ITEM NAME           MODIFIER    │")
	t.println(rule("├", "┤"))
	for i, gear := range offers {
		kind := "DMG"
		if gear.Slot.BoostsDefense() {
			kind = "DEF"
		}
		t.println(fmt.Sprintf("│ %d. %-12s %-18s +%.2f %s     │", i+1, gear.Slot, gear.Name, gear.Modifier, kind))
	}
	t.println(rule("├", "┤"))

	n, err := t.askNumber(ctx, "Enter the number of the item you wish to obtain: ", 1, len(offers), "",
		fmt.Sprintf("Invalid choice. Please enter a number between 1 and %d.", len(offers)))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

// AskHotSpring prints the spring menu and reads the choice
func (t *Terminal) AskHotSpring(ctx context.Context) (game.SpringChoice, error) {
	t.println(rule("┌", "┐"))
	t.println("│ What would you like to do?                       │")
	t.println(rule("├", "┤"))
	t.println("│ 1. Bathe in the spring (fully restore Health/Ki) │")
	t.println("│ 2. Collect minerals (gain Health pots and shards)│")
	t.println(rule("└", "┘"))

	n, err := t.askNumber(ctx, "Enter your choice [1, 2]: ", 1, 2, "", "Invalid choice. Please enter 1 or 2.")
	if err != nil {
		return 0, err
	}
	return game.SpringChoice(n), nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/reapers-guild/internal/entities"
	"github.com/KirkDiggler/reapers-guild/internal/services/battle"
)

var battleMenu = []string{
	"",
	"┌────────────┐  ┌────────────┐",
	"│ 1. STANCE  │  │  2. ITEM   │",
	"└────────────┘  └────────────┘",
	"┌────────────┐",
	"│  3. FIGHT  │",
	"└────────────┘",
}

var menuChoices = map[string]battle.ActionKind{
	"1":      battle.ActionStance,
	"STANCE": battle.ActionStance,
	"2":      battle.ActionItem,
	"ITEM":   battle.ActionItem,
	"3":      battle.ActionAttack,
	"FIGHT":  battle.ActionAttack,
}

// ChooseAction walks the battle menu until the player commits to an action.
// Every sub-menu has a 0 entry that returns to the main menu.
func (t *Terminal) ChooseAction(ctx context.Context, view *battle.TurnView) (*battle.Action, error) {
	for {
		kind, err := t.menu(ctx)
		if err != nil {
			return nil, err
		}

		var action *battle.Action
		switch kind {
		case battle.ActionStance:
			action, err = t.chooseStance(ctx, view.Character)
		case battle.ActionItem:
			action, err = t.chooseItem(ctx, view.Character)
		case battle.ActionAttack:
			action, err = t.chooseAttack(ctx, view.Character, view.Attacks)
		}
		if err != nil {
			return nil, err
		}
		if action != nil {
			return action, nil
		}
	}
}

func (t *Terminal) menu(ctx context.Context) (battle.ActionKind, error) {
	for _, line := range battleMenu {
		t.println(line)
	}
	for {
		line, err := t.ask(ctx, "\nWhat will you do? Enter option name: ")
		if err != nil {
			return 0, err
		}
		if kind, ok := menuChoices[strings.ToUpper(line)]; ok {
			return kind, nil
		}
		t.println("Invalid choice. The option name.")
	}
}

// chooseStance returns nil when the player backs out
func (t *Terminal) chooseStance(ctx context.Context, c *entities.Character) (*battle.Action, error) {
	t.println(fmt.Sprintf("Current stance: %s", c.ActiveStance))
	t.println("Available stances:")
	for i, s := range c.Stances {
		t.println(fmt.Sprintf("%d. %s", i+1, s))
	}
	t.println("0. Back")

	n, err := t.askNumber(ctx, "Choose a stance: ", 0, len(c.Stances), "",
		"Invalid stance. Please select from the available options.")
	if err != nil || n == 0 {
		return nil, err
	}
	return &battle.Action{Kind: battle.ActionStance, Stance: c.Stances[n-1]}, nil
}

// chooseItem lists items the character still has. It returns nil when
// there is nothing to use or the player backs out.
func (t *Terminal) chooseItem(ctx context.Context, c *entities.Character) (*battle.Action, error) {
	items := c.AvailableItems()
	if len(items) == 0 {
		t.println("You have no items to use.")
		return nil, nil
	}

	t.println("Available items:")
	for i, item := range items {
		t.println(fmt.Sprintf("%d. %s (x%d)", i+1, item, c.Items[item]))
	}
	t.println("0. Back")

	n, err := t.askNumber(ctx, "Choose an item: ", 0, len(items), "",
		"Invalid item. Please select from the available options.")
	if err != nil || n == 0 {
		return nil, err
	}
	return &battle.Action{Kind: battle.ActionItem, Item: items[n-1]}, nil
}

func (t *Terminal) chooseAttack(ctx context.Context, c *entities.Character, attacks []entities.Attack) (*battle.Action, error) {
	t.println(fmt.Sprintf("Your stance: %s", c.ActiveStance))
	t.println("Available attacks:")
	for i, a := range attacks {
		effect := "Special Effect"
		if a.Damage > 0 {
			effect = fmt.Sprintf("Damage: %d", a.Damage)
		}
		t.println(fmt.Sprintf("%d. %s (%s) - %s - %s", i+1, a.Name, a.Category, a.Description, effect))
	}
	t.println("0. Back")

	n, err := t.askNumber(ctx, fmt.Sprintf("Choose your attack. Enter a number between 1 and %d (0 to go back): ", len(attacks)),
		0, len(attacks), "Please enter a valid number.",
		fmt.Sprintf("Invalid choice. Please enter a number between 0 and %d", len(attacks)))
	if err != nil || n == 0 {
		return nil, err
	}
	return &battle.Action{Kind: battle.ActionAttack, Attack: n - 1}, nil
}

package battle

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/reapers-guild/internal/combat"
	"github.com/KirkDiggler/reapers-guild/internal/entities"
	rgerr "github.com/KirkDiggler/reapers-guild/internal/errors"
	"github.com/KirkDiggler/reapers-guild/internal/events"
)

const (
	noticeNoKi         = "You don't have enough Ki to use this attack! Choose another action."
	noticeBadStance    = "Invalid stance. Please select from the available options."
	noticeBadItem      = "Invalid item. Please select from the available options."
	noticeBadAttackFmt = "Invalid choice. Please enter a number between 0 and %d"
)

// fight is the state of one running battle
type fight struct {
	svc       *service
	id        string
	character *entities.Character
	monster   *entities.Monster
	prompter  Prompter
	turns     int
}

func (f *fight) emit(eventType events.EventType, message string) error {
	return f.svc.bus.Emit(events.NewBattleEvent(eventType, f.id, f.turns+1, message))
}

func (f *fight) over() bool {
	return !combat.CharacterAlive(f.character) || combat.MonsterDefeated(f.monster)
}

func (f *fight) run(ctx context.Context) (entities.Result, error) {
	side, message, err := combat.TurnOrder(f.svc.roller, string(f.monster.Archetype))
	if err != nil {
		return "", rgerr.Wrap(err, "failed to decide first strike")
	}
	if err := f.emit(events.EventTypeFirstStrike, message); err != nil {
		return "", err
	}

	for !f.over() {
		if err := ctx.Err(); err != nil {
			return "", rgerr.Wrap(err, "battle interrupted")
		}

		if err := f.emit(events.EventTypeTurnStatus, f.statusLines()); err != nil {
			return "", err
		}

		if side == combat.SideMonster {
			err = f.monsterTurn()
		} else {
			err = f.playerTurn(ctx)
		}
		if err != nil {
			return "", err
		}

		f.turns++
		side = side.Next()

		if f.over() {
			break
		}

		if message := f.svc.effects.Run(f.character, f.monster); message != "" {
			if err := f.emit(events.EventTypeStatusDamage, message); err != nil {
				return "", err
			}
		}
	}

	f.svc.effects.Reset(f.character)

	if !combat.MonsterDefeated(f.monster) {
		return entities.ResultDefeat, nil
	}

	reward := f.svc.characterService.AwardMonsterRewards(f.character)
	if err := f.emit(events.EventTypeReward, reward); err != nil {
		return "", err
	}
	return entities.ResultVictory, nil
}

func (f *fight) statusLines() string {
	c, m := f.character, f.monster
	return fmt.Sprintf("Your Health: %d/%d\nYour Ki: %d/%d\n%s's Health: %d/%d",
		c.CurrentHealth, c.Health, c.CurrentKi, c.Ki, m.Archetype, m.CurrentHealth, m.Health)
}

func (f *fight) monsterTurn() error {
	if f.monster.Status.Active(entities.EffectSnared) {
		return f.emit(events.EventTypeMonsterSnared, fmt.Sprintf("%s is snared and cannot move this turn!", f.monster.Archetype))
	}

	attack, err := f.svc.resolver.PickMonsterAttack(f.monster)
	if err != nil {
		return err
	}

	message, err := f.svc.resolver.ResolveMonsterAttack(attack, f.character, f.monster)
	if err != nil {
		return err
	}
	return f.emit(events.EventTypeMonsterAction, message)
}

// playerTurn asks for actions until one completes
func (f *fight) playerTurn(ctx context.Context) error {
	for {
		attacks, err := f.svc.catalog.StanceAttacks(f.character.ActiveStance)
		if err != nil {
			return err
		}

		action, err := f.prompter.ChooseAction(ctx, &TurnView{
			Character: f.character,
			Monster:   f.monster,
			Attacks:   attacks,
		})
		if err != nil {
			return rgerr.Wrap(err, "failed to read player action")
		}
		if action == nil {
			return rgerr.InvalidArgument("prompter returned no action")
		}

		done, err := f.apply(action, attacks)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// apply performs the action and reports whether it used up the turn.
// Refused actions emit a notice and return false.
func (f *fight) apply(action *Action, attacks []entities.Attack) (bool, error) {
	switch action.Kind {
	case ActionStance:
		message, err := f.svc.characterService.SwitchStance(f.character, action.Stance)
		if rgerr.IsInvalidArgument(err) {
			return false, f.emit(events.EventTypeNotice, noticeBadStance)
		}
		if err != nil {
			return false, err
		}
		return true, f.emit(events.EventTypePlayerAction, message)

	case ActionItem:
		message, err := f.svc.characterService.UseItem(f.character, action.Item)
		if rgerr.IsInvalidArgument(err) || rgerr.IsInsufficientResource(err) {
			return false, f.emit(events.EventTypeNotice, noticeBadItem)
		}
		if err != nil {
			return false, err
		}
		return true, f.emit(events.EventTypePlayerAction, message)

	case ActionAttack:
		if action.Attack < 0 || action.Attack >= len(attacks) {
			return false, f.emit(events.EventTypeNotice, fmt.Sprintf(noticeBadAttackFmt, len(attacks)))
		}
		result, err := f.svc.resolver.ResolveCharacterAttack(attacks[action.Attack], f.character, f.monster)
		if err != nil {
			return false, err
		}
		if !result.Success {
			return false, f.emit(events.EventTypeNotice, noticeNoKi)
		}
		return true, f.emit(events.EventTypePlayerAction, result.Message)

	default:
		return false, rgerr.InvalidArgumentf("unknown action kind %d", action.Kind)
	}
}

package engine

import (
	"fmt"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// ItemResult reports how an item use played out. When Obliterated lists
// civilization IDs, those rows must be deleted by the caller.
type ItemResult struct {
	Command     string
	Blocked     bool
	Reflected   bool
	Success     bool
	TechGained  bool
	Obliterated []uint
	Summary     string
}

// offensiveCommands are the item commands subject to the defender's
// Mirror and Shield checks.
var offensiveCommands = map[string]bool{
	game.ItemCmdNuke:       true,
	game.ItemCmdObliterate: true,
	game.ItemCmdBomb:       true,
	game.ItemCmdBackstab:   true,
	game.ItemCmdPropaganda: true,
	game.ItemCmdSuperSpy:   true,
	game.ItemCmdSacrifice:  true,
}

// IsOffensiveItem reports whether the command targets another
// civilization.
func IsOffensiveItem(command string) bool { return offensiveCommands[command] }

// UseItem resolves one item effect. For offensive commands the
// defender's Mirror is checked first, then the Shield; either one is
// consumed on use. A Mirror replays the same computation against the
// original attacker.
func (e *Engine) UseItem(command string, owner, target *game.Civilization) ItemResult {
	if target != nil && offensiveCommands[command] {
		if target.RemoveItem(game.ItemMirror) {
			res := e.applyItem(command, target, owner)
			res.Reflected = true
			if command == game.ItemCmdSacrifice {
				// A reflected altar consumes the one who lit it; the
				// mirror holder walks away.
				res.Obliterated = []uint{owner.ID}
			}
			res.Summary = fmt.Sprintf("%s's attack was reflected by %s's mirror: %s",
				owner.Name, target.Name, res.Summary)
			return res
		}
		if target.RemoveItem(game.ItemShield) {
			return ItemResult{
				Command: command,
				Blocked: true,
				Summary: fmt.Sprintf("%s's shield absorbed %s's attack", target.Name, owner.Name),
			}
		}
	}
	return e.applyItem(command, owner, target)
}

func (e *Engine) applyItem(command string, owner, target *game.Civilization) ItemResult {
	res := ItemResult{Command: command, Success: true}

	switch command {
	case game.ItemCmdNuke:
		e.ApplyPopulation(target, game.PopulationDelta{
			Citizens:  -fractionOf(target.Population.Citizens, e.randFloat(0.4, 0.7)),
			Happiness: -50,
			Hunger:    30,
		})
		e.ApplyMilitary(target, game.MilitaryDelta{
			Soldiers: -fractionOf(target.Military.Soldiers, e.randFloat(0.6, 0.9)),
			Spies:    -fractionOf(target.Military.Spies, 0.5),
		})
		e.ApplyResources(target, game.ResourceDelta{
			Gold:  -fractionOf(target.Resources.Gold, e.randFloat(0.3, 0.6)),
			Food:  -fractionOf(target.Resources.Food, e.randFloat(0.5, 0.8)),
			Wood:  -fractionOf(target.Resources.Wood, e.randFloat(0.4, 0.7)),
			Stone: -fractionOf(target.Resources.Stone, e.randFloat(0.4, 0.7)),
		})
		e.ApplyTerritory(target, game.TerritoryDelta{
			LandSize: -fractionOf(target.Territory.LandSize, e.randFloat(0.2, 0.4)),
		})
		res.Summary = fmt.Sprintf("%s nuked %s", owner.Name, target.Name)

	case game.ItemCmdBomb:
		e.ApplyPopulation(target, game.PopulationDelta{
			Citizens:  -fractionOf(target.Population.Citizens, e.randFloat(0.1, 0.25)),
			Happiness: -20,
		})
		e.ApplyMilitary(target, game.MilitaryDelta{
			Soldiers: -fractionOf(target.Military.Soldiers, e.randFloat(0.2, 0.4)),
		})
		e.ApplyResources(target, game.ResourceDelta{
			Gold:  -fractionOf(target.Resources.Gold, e.randFloat(0.1, 0.2)),
			Wood:  -fractionOf(target.Resources.Wood, e.randFloat(0.15, 0.3)),
			Stone: -fractionOf(target.Resources.Stone, e.randFloat(0.15, 0.3)),
		})
		res.Summary = fmt.Sprintf("%s bombarded %s", owner.Name, target.Name)

	case game.ItemCmdBackstab:
		if e.chance(0.60) {
			e.ApplyPopulation(target, game.PopulationDelta{
				Citizens:  -fractionOf(target.Population.Citizens, 0.10),
				Happiness: -30,
			})
			e.ApplyMilitary(target, game.MilitaryDelta{
				Soldiers: -fractionOf(target.Military.Soldiers, 0.20),
				Spies:    -fractionOf(target.Military.Spies, 0.30),
			})
			res.Summary = fmt.Sprintf("%s's dagger found %s's back", owner.Name, target.Name)
		} else {
			res.Success = false
			e.ApplyPopulation(owner, game.PopulationDelta{Happiness: -15})
			res.Summary = fmt.Sprintf("%s's betrayal of %s was exposed", owner.Name, target.Name)
		}

	case game.ItemCmdPropaganda:
		mod := game.IdeologyModifier(owner.Ideology, game.ModPropaganda)
		turned := maxInt(1, fractionOf(target.Military.Soldiers, e.randFloat(0.15, 0.35)*mod))
		turned = minInt(turned, target.Military.Soldiers)
		e.ApplyMilitary(target, game.MilitaryDelta{Soldiers: -turned})
		e.ApplyMilitary(owner, game.MilitaryDelta{Soldiers: turned})
		res.Summary = fmt.Sprintf("%s's propaganda turned %d of %s's soldiers", owner.Name, turned, target.Name)

	case game.ItemCmdSuperSpy:
		if e.chance(0.90) {
			if e.chance(0.70) && target.Military.TechLevel > 1 {
				e.ApplyMilitary(target, game.MilitaryDelta{TechLevel: -1})
				res.TechGained = e.ApplyMilitary(owner, game.MilitaryDelta{TechLevel: 1})
			}
			stolen := fractionOf(target.Resources.Gold, e.randFloat(0.1, 0.25))
			e.ApplyResources(target, game.ResourceDelta{Gold: -stolen})
			e.ApplyResources(owner, game.ResourceDelta{Gold: stolen})
			if e.chance(0.50) {
				e.ApplyMilitary(target, game.MilitaryDelta{
					Soldiers: -fractionOf(target.Military.Soldiers, e.randFloat(0.05, 0.15)),
				})
			}
			res.Summary = fmt.Sprintf("%s's spy network gutted %s", owner.Name, target.Name)
		} else {
			res.Success = false
			res.Summary = fmt.Sprintf("%s's spy network failed to crack %s", owner.Name, target.Name)
		}

	case game.ItemCmdObliterate:
		res.Obliterated = []uint{target.ID}
		res.Summary = fmt.Sprintf("%s obliterated %s", owner.Name, target.Name)

	case game.ItemCmdSacrifice:
		res.Obliterated = []uint{owner.ID, target.ID}
		res.Summary = fmt.Sprintf("%s dragged %s into mutual annihilation", owner.Name, target.Name)

	case game.ItemCmdLastStand:
		if owner.Resources.Gold >= 500 {
			res.Success = false
			res.Summary = fmt.Sprintf("%s is too prosperous for a last stand", owner.Name)
			break
		}
		poverty := float64(500-owner.Resources.Gold) / 500
		if poverty < 0.1 {
			poverty = 0.1
		}
		mult := 3 + 7*poverty
		e.ApplyMilitary(owner, game.MilitaryDelta{
			Soldiers:  fractionOf(owner.Military.Soldiers, mult),
			Spies:     fractionOf(owner.Military.Spies, mult),
			TechLevel: e.randInt(3, 8),
		})
		e.ApplyPopulation(owner, game.PopulationDelta{Happiness: 40})
		res.Summary = fmt.Sprintf("%s rallied for a desperate last stand", owner.Name)

	case game.ItemCmdHireMercs:
		e.ApplyMilitary(owner, game.MilitaryDelta{
			Soldiers: e.randInt(50, 150),
			Spies:    e.randInt(5, 15),
		})
		res.Summary = fmt.Sprintf("%s hired a mercenary company", owner.Name)

	case game.ItemCmdBoostTech:
		res.TechGained = e.ApplyMilitary(owner, game.MilitaryDelta{TechLevel: e.randInt(2, 4)})
		res.Summary = fmt.Sprintf("%s deciphered an ancient scroll", owner.Name)

	case game.ItemCmdMintGold:
		minted := e.randInt(2000, 5000) + owner.Population.Citizens*2
		e.ApplyResources(owner, game.ResourceDelta{Gold: minted})
		res.Summary = fmt.Sprintf("%s minted %d gold", owner.Name, minted)

	case game.ItemCmdSuperHarvest:
		harvest := e.randInt(3000, 7000) + owner.Territory.LandSize*2
		e.ApplyResources(owner, game.ResourceDelta{Food: harvest})
		e.ApplyPopulation(owner, game.PopulationDelta{Happiness: 15, Hunger: -50})
		res.Summary = fmt.Sprintf("%s reaped a miraculous harvest of %d food", owner.Name, harvest)

	case game.ItemCmdMegaInvent:
		res.TechGained = e.ApplyMilitary(owner, game.MilitaryDelta{TechLevel: e.randInt(5, 10)})
		res.Summary = fmt.Sprintf("%s's tech core rewrote its sciences", owner.Name)

	case game.ItemCmdLuckyStrike:
		if owner.Bonuses == nil {
			owner.Bonuses = game.Bonuses{}
		}
		owner.Bonuses[game.BonusNextActionCritical] = 1
		res.Summary = fmt.Sprintf("%s feels lucky", owner.Name)

	default:
		res.Success = false
		res.Summary = fmt.Sprintf("unknown item command %q", command)
	}

	return res
}

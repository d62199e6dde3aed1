package engine

import (
	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// cardDrawSize is how many candidates each selection offers.
const cardDrawSize = 5

// GenerateCardSelection draws candidate cards without replacement from
// the advancement pool for a civilization that just reached techLevel.
func (e *Engine) GenerateCardSelection(civID uint, techLevel int) *game.CardSelection {
	idx := e.rand.Perm(len(game.CardPool))
	n := minInt(cardDrawSize, len(idx))
	names := make([]string, 0, n)
	for _, i := range idx[:n] {
		names = append(names, game.CardPool[i].Name)
	}
	return &game.CardSelection{
		CivilizationID: civID,
		TechLevel:      techLevel,
		Cards:          names,
		Status:         game.OfferPending,
	}
}

// SelectCard applies the named card from a pending selection, records
// it on the civilization and closes the selection. It reports whether
// the card was a valid candidate and whether its effect advanced tech
// again.
func (e *Engine) SelectCard(sel *game.CardSelection, c *game.Civilization, name string) (techAdvanced, ok bool) {
	if sel.Status != game.OfferPending {
		return false, false
	}
	offered := false
	for _, candidate := range sel.Cards {
		if candidate == name {
			offered = true
			break
		}
	}
	if !offered {
		return false, false
	}
	card, found := game.CardByName(name)
	if !found {
		return false, false
	}

	techAdvanced = e.ApplyEffect(c, card.Effect)
	c.SelectedCards = append(c.SelectedCards, card.Name)
	sel.Chosen = card.Name
	sel.Status = game.OfferAccepted
	return techAdvanced, true
}

// BuyUpgrade purchases a store upgrade. A bonus key an earlier purchase
// already wrote blocks the sale, so each structural upgrade is bought
// at most once.
func (e *Engine) BuyUpgrade(c *game.Civilization, name string) (game.StoreUpgrade, bool) {
	up, found := game.UpgradeByName(name)
	if !found {
		return game.StoreUpgrade{}, false
	}
	for _, g := range up.Grants {
		if c.Bonus(g.Key) > 0 {
			return game.StoreUpgrade{}, false
		}
	}
	if !e.Spend(c, up.Cost) {
		return game.StoreUpgrade{}, false
	}
	for _, g := range up.Grants {
		c.AddBonus(g.Key, g.Points)
	}
	return up, true
}

// RollBlackMarket charges the entry fee and rolls the weighted item
// pool, adding the prize to the inventory.
func (e *Engine) RollBlackMarket(c *game.Civilization) (game.HyperItem, bool) {
	if !e.Spend(c, game.Resources{Gold: game.BlackMarketEntryFee}) {
		return game.HyperItem{}, false
	}

	total := 0
	for _, it := range game.BlackMarketPool {
		total += it.Weight
	}
	pick := e.rand.Intn(total)
	for _, it := range game.BlackMarketPool {
		pick -= it.Weight
		if pick < 0 {
			c.HyperItems = append(c.HyperItems, it.Name)
			return it, true
		}
	}
	// Unreachable while the pool has positive total weight.
	return game.HyperItem{}, false
}

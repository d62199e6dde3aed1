package service

import (
	"fmt"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/engine"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
	"github.com/unkownPen/nationbotg-sub000/internal/logging"
)

// ListUpgrades returns the fixed upgrade shop.
func (s *Service) ListUpgrades() []game.StoreUpgrade { return game.StoreUpgrades }

// BuyUpgrade purchases one structural upgrade, refusing duplicates.
func (s *Service) BuyUpgrade(civID uint, name string) (game.StoreUpgrade, error) {
	unlock := s.locks.Lock(civID)
	defer unlock()

	c, err := s.loadCiv(civID)
	if err != nil {
		return game.StoreUpgrade{}, err
	}
	up, found := game.UpgradeByName(name)
	if !found {
		return game.StoreUpgrade{}, ErrUpgradeUnknown
	}
	for _, g := range up.Grants {
		if c.Bonus(g.Key) > 0 {
			return game.StoreUpgrade{}, ErrUpgradeOwned
		}
	}

	bought, ok := s.eng.BuyUpgrade(c, name)
	if !ok {
		return game.StoreUpgrade{}, ErrInsufficientResources
	}
	if err := s.repo.UpdateCivilization(c); err != nil {
		return game.StoreUpgrade{}, err
	}
	s.record(civID, "upgrade", "Upgrade Built", fmt.Sprintf("%s built the %s", c.Name, bought.Name))
	return bought, nil
}

// VisitBlackMarket charges the entry fee and rolls the weighted item
// pool.
func (s *Service) VisitBlackMarket(civID uint) (game.HyperItem, error) {
	unlock := s.locks.Lock(civID)
	defer unlock()

	c, err := s.loadCiv(civID)
	if err != nil {
		return game.HyperItem{}, err
	}
	item, ok := s.eng.RollBlackMarket(c)
	if !ok {
		return game.HyperItem{}, ErrInsufficientResources
	}
	if err := s.repo.UpdateCivilization(c); err != nil {
		return game.HyperItem{}, err
	}
	s.record(civID, "blackmarket", "Black Market Purchase", fmt.Sprintf("%s acquired a %s on the black market", c.Name, item.Name))
	return item, nil
}

// UseItem consumes an inventory item and resolves its effect. The
// sacrifice command only arms a confirmation window here; ConfirmSacrifice
// finishes it.
func (s *Service) UseItem(ownerID uint, itemName string, targetID uint) (engine.ItemResult, error) {
	owner, err := s.loadCiv(ownerID)
	if err != nil {
		return engine.ItemResult{}, err
	}
	item, found := game.ItemByName(itemName)
	if !found || !owner.HasItem(itemName) {
		return engine.ItemResult{}, ErrItemNotOwned
	}

	if engine.IsOffensiveItem(item.Command) {
		if targetID == 0 {
			return engine.ItemResult{}, ErrItemNeedsTarget
		}
		if targetID == ownerID {
			return engine.ItemResult{}, ErrSelfTarget
		}
	}

	if item.Command == game.ItemCmdSacrifice {
		if _, err := s.loadTarget(targetID); err != nil {
			return engine.ItemResult{}, err
		}
		s.sacrifices.arm(ownerID, targetID)
		return engine.ItemResult{
			Command: item.Command,
			Summary: fmt.Sprintf("%s stands at the altar; confirm within %s to finish the ritual",
				owner.Name, s.sacrifices.window),
		}, nil
	}

	var unlock func()
	if engine.IsOffensiveItem(item.Command) {
		unlock = s.locks.LockPair(ownerID, targetID)
	} else {
		unlock = s.locks.Lock(ownerID)
	}
	defer unlock()

	// Re-load under the lock so the inventory check is authoritative.
	owner, err = s.loadCiv(ownerID)
	if err != nil {
		return engine.ItemResult{}, err
	}
	if !owner.RemoveItem(itemName) {
		return engine.ItemResult{}, ErrItemNotOwned
	}

	var target *game.Civilization
	if engine.IsOffensiveItem(item.Command) {
		target, err = s.loadTarget(targetID)
		if err != nil {
			return engine.ItemResult{}, err
		}
	}

	res := s.eng.UseItem(item.Command, owner, target)
	logging.Info("item used", logging.Fields{
		constants.LogFieldCivID:   ownerID,
		constants.LogFieldItem:    itemName,
		constants.LogFieldCommand: item.Command,
	})

	for _, id := range res.Obliterated {
		if err := s.repo.DeleteCivilization(id); err != nil {
			return engine.ItemResult{}, err
		}
	}
	if !contains(res.Obliterated, ownerID) {
		if err := s.repo.UpdateCivilization(owner); err != nil {
			return engine.ItemResult{}, err
		}
	}
	if target != nil && !contains(res.Obliterated, targetID) {
		if err := s.repo.UpdateCivilization(target); err != nil {
			return engine.ItemResult{}, err
		}
	}

	s.record(ownerID, "item", "Hyper Item", res.Summary)
	if target != nil {
		s.record(targetID, "item", "Hyper Item", res.Summary)
	}
	s.maybeOfferCards(owner, res.TechGained)
	return res, nil
}

// ConfirmSacrifice completes a previously armed sacrifice while its
// window is open, destroying both civilizations.
func (s *Service) ConfirmSacrifice(ownerID uint) (engine.ItemResult, error) {
	targetID, ok := s.sacrifices.confirm(ownerID)
	if !ok {
		return engine.ItemResult{}, ErrSacrificeNotPending
	}

	unlock := s.locks.LockPair(ownerID, targetID)
	defer unlock()

	owner, err := s.loadCiv(ownerID)
	if err != nil {
		return engine.ItemResult{}, err
	}
	if !owner.RemoveItem(game.ItemAltar) {
		return engine.ItemResult{}, ErrItemNotOwned
	}
	target, err := s.loadTarget(targetID)
	if err != nil {
		return engine.ItemResult{}, err
	}

	res := s.eng.UseItem(game.ItemCmdSacrifice, owner, target)
	if res.Blocked || res.Reflected {
		// A defense fired; the owner's altar is spent but the owner
		// survives unless the mirror turned the ritual back.
		for _, id := range res.Obliterated {
			if err := s.repo.DeleteCivilization(id); err != nil {
				return engine.ItemResult{}, err
			}
		}
		if !contains(res.Obliterated, ownerID) {
			if err := s.repo.UpdateCivilization(owner); err != nil {
				return engine.ItemResult{}, err
			}
		}
		if !contains(res.Obliterated, targetID) {
			if err := s.repo.UpdateCivilization(target); err != nil {
				return engine.ItemResult{}, err
			}
		}
		s.record(targetID, "item", "Hyper Item", res.Summary)
		return res, nil
	}

	for _, id := range res.Obliterated {
		if err := s.repo.DeleteCivilization(id); err != nil {
			return engine.ItemResult{}, err
		}
	}
	s.record(ownerID, "item", "Hyper Item", res.Summary)
	return res, nil
}

func contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

package service

import (
	"fmt"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/engine"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
	"github.com/unkownPen/nationbotg-sub000/internal/logging"
)

// DeclareWar opens a war against another civilization. Allies and
// already-warring pairs are refused.
func (s *Service) DeclareWar(attackerID, defenderID uint) (*game.War, error) {
	if attackerID == defenderID {
		return nil, ErrSelfTarget
	}
	unlock := s.locks.LockPair(attackerID, defenderID)
	defer unlock()

	attacker, err := s.loadCiv(attackerID)
	if err != nil {
		return nil, err
	}
	defender, err := s.loadTarget(defenderID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.FindOngoingWar(attackerID, defenderID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrAlreadyAtWar
	}
	if alliance, err := s.repo.FindAllianceOf(attackerID); err != nil {
		return nil, err
	} else if alliance != nil && alliance.HasMember(defenderID) {
		return nil, ErrAlliedTarget
	}

	w := &game.War{AttackerID: attackerID, DefenderID: defenderID, Status: game.WarOngoing}
	if err := s.repo.CreateWar(w); err != nil {
		return nil, err
	}
	logging.Info("war declared", logging.Fields{
		constants.LogFieldCivID:    attackerID,
		constants.LogFieldTargetID: defenderID,
		constants.LogFieldWarID:    w.ID,
	})
	s.record(attackerID, "war_declared", "War Declared", fmt.Sprintf("%s declared war on %s", attacker.Name, defender.Name))
	s.record(defenderID, "war_declared", "Under Attack", fmt.Sprintf("%s is under attack by %s", defender.Name, attacker.Name))
	return w, nil
}

// Attack fights one battle inside an ongoing war.
func (s *Service) Attack(attackerID, defenderID uint) (engine.BattleResult, error) {
	if attackerID == defenderID {
		return engine.BattleResult{}, ErrSelfTarget
	}
	unlock := s.locks.LockPair(attackerID, defenderID)
	defer unlock()

	if err := s.checkCooldown(attackerID, "attack"); err != nil {
		return engine.BattleResult{}, err
	}
	attacker, err := s.loadCiv(attackerID)
	if err != nil {
		return engine.BattleResult{}, err
	}
	defender, err := s.loadTarget(defenderID)
	if err != nil {
		return engine.BattleResult{}, err
	}
	war, err := s.repo.FindOngoingWar(attackerID, defenderID)
	if err != nil {
		return engine.BattleResult{}, err
	}
	if war == nil {
		return engine.BattleResult{}, ErrNotAtWar
	}
	if attacker.Military.Soldiers < engine.AttackMinSoldiers {
		return engine.BattleResult{}, ErrNotEnoughSoldiers
	}

	res, ok := s.eng.ResolveAttack(attacker, defender)
	if !ok {
		return engine.BattleResult{}, ErrNotEnoughSoldiers
	}
	if err := s.repo.UpdateCivilization(attacker); err != nil {
		return engine.BattleResult{}, err
	}
	if err := s.repo.UpdateCivilization(defender); err != nil {
		return engine.BattleResult{}, err
	}
	s.commitCooldown(attackerID, "attack")
	s.record(attackerID, "battle", "Battle", res.Summary)
	s.record(defenderID, "battle", "Battle", res.Summary)
	return res, nil
}

// Siege grinds the defender's economy inside an ongoing war.
func (s *Service) Siege(attackerID, defenderID uint) (engine.SiegeResult, error) {
	if attackerID == defenderID {
		return engine.SiegeResult{}, ErrSelfTarget
	}
	unlock := s.locks.LockPair(attackerID, defenderID)
	defer unlock()

	if err := s.checkCooldown(attackerID, "siege"); err != nil {
		return engine.SiegeResult{}, err
	}
	attacker, err := s.loadCiv(attackerID)
	if err != nil {
		return engine.SiegeResult{}, err
	}
	defender, err := s.loadTarget(defenderID)
	if err != nil {
		return engine.SiegeResult{}, err
	}
	war, err := s.repo.FindOngoingWar(attackerID, defenderID)
	if err != nil {
		return engine.SiegeResult{}, err
	}
	if war == nil {
		return engine.SiegeResult{}, ErrNotAtWar
	}
	if attacker.Military.Soldiers < engine.SiegeMinSoldiers {
		return engine.SiegeResult{}, ErrNotEnoughSoldiers
	}

	res, ok := s.eng.ResolveSiege(attacker, defender)
	if !ok {
		return engine.SiegeResult{}, ErrInsufficientResources
	}
	if err := s.repo.UpdateCivilization(attacker); err != nil {
		return engine.SiegeResult{}, err
	}
	if err := s.repo.UpdateCivilization(defender); err != nil {
		return engine.SiegeResult{}, err
	}
	s.commitCooldown(attackerID, "siege")
	s.record(attackerID, "siege", "Siege", res.Summary)
	s.record(defenderID, "siege", "Siege", res.Summary)
	return res, nil
}

// Stealth runs a covert operation; no war is required.
func (s *Service) Stealth(attackerID, defenderID uint) (engine.StealthResult, error) {
	if attackerID == defenderID {
		return engine.StealthResult{}, ErrSelfTarget
	}
	unlock := s.locks.LockPair(attackerID, defenderID)
	defer unlock()

	if err := s.checkCooldown(attackerID, "stealth"); err != nil {
		return engine.StealthResult{}, err
	}
	attacker, err := s.loadCiv(attackerID)
	if err != nil {
		return engine.StealthResult{}, err
	}
	defender, err := s.loadTarget(defenderID)
	if err != nil {
		return engine.StealthResult{}, err
	}

	res, ok := s.eng.ResolveStealth(attacker, defender)
	if !ok {
		return engine.StealthResult{}, ErrNotEnoughSpies
	}
	if err := s.repo.UpdateCivilization(attacker); err != nil {
		return engine.StealthResult{}, err
	}
	if err := s.repo.UpdateCivilization(defender); err != nil {
		return engine.StealthResult{}, err
	}
	s.commitCooldown(attackerID, "stealth")
	s.record(attackerID, "stealth", "Covert Operation", res.Summary)
	if res.Success {
		s.record(defenderID, "stealth", "Covert Operation", res.Summary)
	}
	s.maybeOfferCards(attacker, res.TechGained)
	return res, nil
}

// OfferPeace files a peace proposal inside an ongoing war.
func (s *Service) OfferPeace(offererID, receiverID uint) (*game.PeaceOffer, error) {
	if offererID == receiverID {
		return nil, ErrSelfTarget
	}
	unlock := s.locks.LockPair(offererID, receiverID)
	defer unlock()

	offerer, err := s.loadCiv(offererID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.loadTarget(receiverID)
	if err != nil {
		return nil, err
	}
	war, err := s.repo.FindOngoingWar(offererID, receiverID)
	if err != nil {
		return nil, err
	}
	if war == nil {
		return nil, ErrNotAtWar
	}
	if pending, err := s.repo.FindPendingPeaceOffer(war.ID, receiverID); err != nil {
		return nil, err
	} else if pending != nil {
		return nil, ErrPeaceOfferExists
	}

	offer := &game.PeaceOffer{
		WarID:      war.ID,
		OffererID:  offererID,
		ReceiverID: receiverID,
		Status:     game.OfferPending,
	}
	if err := s.repo.CreatePeaceOffer(offer); err != nil {
		return nil, err
	}
	s.record(receiverID, "peace_offer", "Peace Offer", fmt.Sprintf("%s offered peace to %s", offerer.Name, receiver.Name))
	return offer, nil
}

// AcceptPeace ends the war when a pending offer from the other side
// exists. Both populations celebrate.
func (s *Service) AcceptPeace(accepterID, offererID uint) error {
	if accepterID == offererID {
		return ErrSelfTarget
	}
	unlock := s.locks.LockPair(accepterID, offererID)
	defer unlock()

	accepter, err := s.loadCiv(accepterID)
	if err != nil {
		return err
	}
	offerer, err := s.loadTarget(offererID)
	if err != nil {
		return err
	}
	war, err := s.repo.FindOngoingWar(accepterID, offererID)
	if err != nil {
		return err
	}
	if war == nil {
		return ErrNotAtWar
	}
	offer, err := s.repo.FindPendingPeaceOffer(war.ID, accepterID)
	if err != nil {
		return err
	}
	if offer == nil || offer.OffererID != offererID {
		return ErrNoPendingPeaceOffer
	}

	war.Status = game.WarPeace
	offer.Status = game.OfferAccepted
	if err := s.repo.UpdateWar(war); err != nil {
		return err
	}
	if err := s.repo.UpdatePeaceOffer(offer); err != nil {
		return err
	}

	s.eng.ApplyPopulation(accepter, game.PopulationDelta{Happiness: 15})
	s.eng.ApplyPopulation(offerer, game.PopulationDelta{Happiness: 15})
	if err := s.repo.UpdateCivilization(accepter); err != nil {
		return err
	}
	if err := s.repo.UpdateCivilization(offerer); err != nil {
		return err
	}
	s.record(accepterID, "peace", "Peace Treaty", fmt.Sprintf("%s and %s made peace", accepter.Name, offerer.Name))
	s.record(offererID, "peace", "Peace Treaty", fmt.Sprintf("%s and %s made peace", accepter.Name, offerer.Name))
	return nil
}

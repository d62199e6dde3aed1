package service

import (
	"fmt"
	"strings"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/engine"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
	"github.com/unkownPen/nationbotg-sub000/internal/logging"
)

// CreateCivilization founds a new nation for a user. One civilization
// per user; the fresh nation immediately receives its first card
// selection. The ideology may stay unset and be chosen later, exactly
// once.
func (s *Service) CreateCivilization(userID, name string, ideology game.Ideology) (*game.Civilization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if ideology != game.IdeologyNone && !ideology.Valid() {
		return nil, ErrInvalidIdeology
	}
	existing, err := s.repo.GetCivilizationByUser(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserHasCivilization
	}

	c := engine.NewCivilization(userID, name, ideology)
	if err := s.repo.CreateCivilization(c); err != nil {
		return nil, err
	}

	sel := s.eng.GenerateCardSelection(c.ID, c.Military.TechLevel)
	if err := s.repo.CreateCardSelection(sel); err != nil {
		return nil, err
	}
	logging.Info("civilization founded", logging.Fields{
		constants.LogFieldCivID:  c.ID,
		constants.LogFieldUserID: userID,
	})
	desc := fmt.Sprintf("%s was founded", c.Name)
	if c.Ideology != game.IdeologyNone {
		desc = fmt.Sprintf("%s was founded under %s rule", c.Name, c.Ideology)
	}
	s.record(c.ID, "founded", "Civilization Founded", desc)
	return c, nil
}

// SetIdeology commits an unaligned nation to a government. The choice
// is permanent.
func (s *Service) SetIdeology(civID uint, ideology game.Ideology) error {
	if !ideology.Valid() {
		return ErrInvalidIdeology
	}
	unlock := s.locks.Lock(civID)
	defer unlock()

	c, err := s.loadCiv(civID)
	if err != nil {
		return err
	}
	if c.Ideology != game.IdeologyNone {
		return ErrIdeologySet
	}

	c.Ideology = ideology
	if err := s.repo.UpdateCivilization(c); err != nil {
		return err
	}
	s.record(civID, "ideology", "Ideology Chosen",
		fmt.Sprintf("%s embraced %s rule", c.Name, ideology))
	return nil
}

// GetCivilization returns the raw record without derived numbers.
func (s *Service) GetCivilization(civID uint) (*game.Civilization, error) {
	return s.loadCiv(civID)
}

// Status is the full readout for one civilization.
type Status struct {
	Civilization *game.Civilization `json:"civilization"`
	Power        int                `json:"power"`
	CivilWarRisk float64            `json:"civil_war_risk"`
	OngoingWars  []game.War         `json:"ongoing_wars"`
}

// GetStatus returns the civilization with its derived numbers.
func (s *Service) GetStatus(civID uint) (*Status, error) {
	c, err := s.loadCiv(civID)
	if err != nil {
		return nil, err
	}
	wars, err := s.repo.ListOngoingWars(civID)
	if err != nil {
		return nil, err
	}
	return &Status{
		Civilization: c,
		Power:        s.eng.PowerScore(c),
		CivilWarRisk: s.eng.CivilWarRisk(c),
		OngoingWars:  wars,
	}, nil
}

// Harvest runs an on-demand income cycle for one civilization, with the
// command's cooldown.
func (s *Service) Harvest(civID uint) (engine.IncomeReport, error) {
	unlock := s.locks.Lock(civID)
	defer unlock()

	if err := s.checkCooldown(civID, "harvest"); err != nil {
		return engine.IncomeReport{}, err
	}
	c, err := s.loadCiv(civID)
	if err != nil {
		return engine.IncomeReport{}, err
	}

	report := s.eng.ProcessIncome(c)
	if err := s.repo.UpdateCivilization(c); err != nil {
		return engine.IncomeReport{}, err
	}
	s.commitCooldown(civID, "harvest")
	s.record(civID, "harvest", "Harvest",
		fmt.Sprintf("%s collected %d gold and %d food", c.Name, report.Gold, report.Food))
	return report, nil
}

// Train converts resources into soldiers or spies under the training
// cooldown.
func (s *Service) Train(civID uint, count int, spies bool) (engine.TrainingResult, error) {
	unlock := s.locks.Lock(civID)
	defer unlock()

	if err := s.checkCooldown(civID, "train"); err != nil {
		return engine.TrainingResult{}, err
	}
	c, err := s.loadCiv(civID)
	if err != nil {
		return engine.TrainingResult{}, err
	}

	var (
		res engine.TrainingResult
		ok  bool
	)
	if spies {
		res, ok = s.eng.TrainSpies(c, count)
	} else {
		res, ok = s.eng.TrainSoldiers(c, count)
	}
	if !ok {
		return engine.TrainingResult{}, ErrInsufficientResources
	}
	if err := s.repo.UpdateCivilization(c); err != nil {
		return engine.TrainingResult{}, err
	}
	s.commitCooldown(civID, "train")

	unit := "soldiers"
	if spies {
		unit = "spies"
	}
	s.record(civID, "training", "Training Complete", fmt.Sprintf("%s trained %d %s", c.Name, res.Trained, unit))
	return res, nil
}

// SelectCard resolves a pending advancement choice.
func (s *Service) SelectCard(civID uint, cardName string) error {
	unlock := s.locks.Lock(civID)
	defer unlock()

	sel, err := s.repo.FindPendingCardSelection(civID)
	if err != nil {
		return err
	}
	if sel == nil {
		return ErrNoPendingSelection
	}
	c, err := s.loadCiv(civID)
	if err != nil {
		return err
	}

	techAdvanced, ok := s.eng.SelectCard(sel, c, cardName)
	if !ok {
		return ErrCardNotOffered
	}
	if err := s.repo.UpdateCivilization(c); err != nil {
		return err
	}
	if err := s.repo.UpdateCardSelection(sel); err != nil {
		return err
	}
	s.record(civID, "card_selected", "Card Adopted", fmt.Sprintf("%s adopted %s", c.Name, cardName))
	s.maybeOfferCards(c, techAdvanced)
	return nil
}

// PendingCards returns the open selection, nil when there is none.
func (s *Service) PendingCards(civID uint) (*game.CardSelection, error) {
	if _, err := s.loadCiv(civID); err != nil {
		return nil, err
	}
	return s.repo.FindPendingCardSelection(civID)
}

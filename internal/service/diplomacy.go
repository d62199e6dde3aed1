package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// CreateTrade files a resource swap offer addressed to another
// civilization. The offered goods stay with the sender until the
// receiver accepts.
func (s *Service) CreateTrade(senderID, receiverID uint, offer, request game.Resources) (*game.TradeRequest, error) {
	if senderID == receiverID {
		return nil, ErrSelfTarget
	}
	unlock := s.locks.Lock(senderID)
	defer unlock()

	sender, err := s.loadCiv(senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.loadTarget(receiverID)
	if err != nil {
		return nil, err
	}
	if !s.eng.CanAfford(sender, offer) {
		return nil, ErrInsufficientResources
	}

	t := &game.TradeRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Offer:      offer,
		Request:    request,
		Status:     game.OfferPending,
		ExpiresAt:  time.Now().Add(time.Duration(s.cfg.TradeTTLMinutes) * time.Minute),
	}
	if err := s.repo.CreateTrade(t); err != nil {
		return nil, err
	}
	s.record(receiverID, "trade_offer", "Trade Offer", fmt.Sprintf("%s proposed a trade to %s", sender.Name, receiver.Name))
	return t, nil
}

// AcceptTrade settles a pending trade. Both sides must still afford
// their legs; trade-profit bonuses sweeten what each party receives.
func (s *Service) AcceptTrade(receiverID, tradeID uint) error {
	t, err := s.repo.GetTradeByID(tradeID)
	if err != nil {
		return ErrTradeNotFound
	}
	if t.ReceiverID != receiverID {
		return ErrNotTradeReceiver
	}
	if t.Status != game.OfferPending || time.Now().After(t.ExpiresAt) {
		return ErrTradeNotPending
	}

	unlock := s.locks.LockPair(t.SenderID, t.ReceiverID)
	defer unlock()

	sender, err := s.loadCiv(t.SenderID)
	if err != nil {
		return err
	}
	receiver, err := s.loadCiv(t.ReceiverID)
	if err != nil {
		return err
	}
	if !s.eng.CanAfford(sender, t.Offer) || !s.eng.CanAfford(receiver, t.Request) {
		return ErrInsufficientResources
	}

	s.eng.Spend(sender, t.Offer)
	s.eng.Spend(receiver, t.Request)
	s.eng.ApplyResources(sender, tradeGain(sender, t.Request))
	s.eng.ApplyResources(receiver, tradeGain(receiver, t.Offer))

	t.Status = game.OfferAccepted
	if err := s.repo.UpdateCivilization(sender); err != nil {
		return err
	}
	if err := s.repo.UpdateCivilization(receiver); err != nil {
		return err
	}
	if err := s.repo.UpdateTrade(t); err != nil {
		return err
	}
	s.record(t.SenderID, "trade", "Trade Complete", fmt.Sprintf("%s completed a trade with %s", sender.Name, receiver.Name))
	s.record(t.ReceiverID, "trade", "Trade Complete", fmt.Sprintf("%s completed a trade with %s", receiver.Name, sender.Name))
	return nil
}

// tradeGain applies the recipient's ideology and marketplace bonuses to
// an incoming trade leg. Bonus points stack additively on the ideology
// table value.
func tradeGain(c *game.Civilization, goods game.Resources) game.ResourceDelta {
	mult := game.IdeologyModifier(c.Ideology, game.ModTrade) +
		(c.Bonus(game.BonusTradeProfit)+c.Bonus(game.BonusTrade))/100
	return game.ResourceDelta{
		Gold:  int(float64(goods.Gold) * mult),
		Food:  int(float64(goods.Food) * mult),
		Stone: int(float64(goods.Stone) * mult),
		Wood:  int(float64(goods.Wood) * mult),
	}
}

// CreateAlliance founds a named pact with the caller as its leader and
// sole member.
func (s *Service) CreateAlliance(leaderID uint, name string) (*game.Alliance, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAllianceNameRequired
	}
	leader, err := s.loadCiv(leaderID)
	if err != nil {
		return nil, err
	}
	if existing, err := s.repo.FindAllianceOf(leaderID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrAlreadyInAlliance
	}
	if taken, err := s.repo.GetAllianceByName(name); err != nil {
		return nil, err
	} else if taken != nil {
		return nil, ErrAllianceNameTaken
	}

	a := &game.Alliance{Name: name, LeaderID: leaderID, Members: []uint{leaderID}}
	if err := s.repo.CreateAlliance(a); err != nil {
		return nil, err
	}
	s.record(leaderID, "alliance_founded", "Alliance Founded",
		fmt.Sprintf("%s founded the alliance %s", leader.Name, a.Name))
	return a, nil
}

// RequestJoinAlliance files a join request with the named alliance. The
// leader decides on it later.
func (s *Service) RequestJoinAlliance(civID uint, name string) error {
	c, err := s.loadCiv(civID)
	if err != nil {
		return err
	}
	if existing, err := s.repo.FindAllianceOf(civID); err != nil {
		return err
	} else if existing != nil {
		return ErrAlreadyInAlliance
	}
	a, err := s.repo.GetAllianceByName(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	if a == nil {
		return ErrAllianceNotFound
	}
	if a.HasJoinRequest(civID) {
		return ErrJoinRequestPending
	}

	a.JoinRequests = append(a.JoinRequests, civID)
	if err := s.repo.UpdateAlliance(a); err != nil {
		return err
	}
	s.record(a.LeaderID, "alliance_request", "Join Request",
		fmt.Sprintf("%s asked to join %s", c.Name, a.Name))
	return nil
}

// AcceptJoinRequest lets the alliance leader admit an applicant, moving
// it from the request list into the member roll.
func (s *Service) AcceptJoinRequest(leaderID, applicantID uint) error {
	if leaderID == applicantID {
		return ErrSelfTarget
	}
	if _, err := s.loadCiv(leaderID); err != nil {
		return err
	}
	applicant, err := s.loadTarget(applicantID)
	if err != nil {
		return err
	}
	a, err := s.repo.FindAllianceOf(leaderID)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrNotInAlliance
	}
	if a.LeaderID != leaderID {
		return ErrNotAllianceLeader
	}
	if !a.RemoveJoinRequest(applicantID) {
		return ErrNoJoinRequest
	}

	a.Members = append(a.Members, applicantID)
	if err := s.repo.UpdateAlliance(a); err != nil {
		return err
	}
	s.record(applicantID, "alliance_joined", "Alliance Joined",
		fmt.Sprintf("%s joined the alliance %s", applicant.Name, a.Name))
	s.record(leaderID, "alliance_joined", "Alliance Joined",
		fmt.Sprintf("%s joined the alliance %s", applicant.Name, a.Name))
	return nil
}

// LeaveAlliance removes the caller from its alliance. A departing
// leader disbands the pact entirely.
func (s *Service) LeaveAlliance(civID uint) error {
	c, err := s.loadCiv(civID)
	if err != nil {
		return err
	}
	a, err := s.repo.FindAllianceOf(civID)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrNotInAlliance
	}

	if a.LeaderID == civID {
		members := append([]uint{}, a.Members...)
		if err := s.repo.DeleteAlliance(a.ID); err != nil {
			return err
		}
		for _, id := range members {
			s.record(id, "alliance_disbanded", "Alliance Disbanded",
				fmt.Sprintf("%s disbanded the alliance %s", c.Name, a.Name))
		}
		return nil
	}

	a.RemoveMember(civID)
	if err := s.repo.UpdateAlliance(a); err != nil {
		return err
	}
	s.record(civID, "alliance_left", "Alliance Left",
		fmt.Sprintf("%s left the alliance %s", c.Name, a.Name))
	s.record(a.LeaderID, "alliance_left", "Alliance Left",
		fmt.Sprintf("%s left the alliance %s", c.Name, a.Name))
	return nil
}

// AllianceOf returns the civilization's alliance, nil when unaligned.
func (s *Service) AllianceOf(civID uint) (*game.Alliance, error) {
	if _, err := s.loadCiv(civID); err != nil {
		return nil, err
	}
	return s.repo.FindAllianceOf(civID)
}

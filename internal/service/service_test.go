package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/unkownPen/nationbotg-sub000/internal/config"
	"github.com/unkownPen/nationbotg-sub000/internal/engine"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// memRepo is an in-memory Repository for service tests.
type memRepo struct {
	mu         sync.Mutex
	nextID     uint
	civs       map[uint]*game.Civilization
	wars       map[uint]*game.War
	offers     map[uint]*game.PeaceOffer
	alliances  map[uint]*game.Alliance
	trades     map[uint]*game.TradeRequest
	selections map[uint]*game.CardSelection
	cooldowns  map[string]*game.Cooldown
	events     []game.EventRecord
}

func newMemRepo() *memRepo {
	return &memRepo{
		nextID:     1,
		civs:       map[uint]*game.Civilization{},
		wars:       map[uint]*game.War{},
		offers:     map[uint]*game.PeaceOffer{},
		alliances:  map[uint]*game.Alliance{},
		trades:     map[uint]*game.TradeRequest{},
		selections: map[uint]*game.CardSelection{},
		cooldowns:  map[string]*game.Cooldown{},
	}
}

func (r *memRepo) id() uint {
	id := r.nextID
	r.nextID++
	return id
}

func (r *memRepo) CreateCivilization(c *game.Civilization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.id()
	cp := *c
	r.civs[c.ID] = &cp
	return nil
}

func (r *memRepo) GetCivilizationByID(id uint) (*game.Civilization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.civs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) GetCivilizationByUser(userID string) (*game.Civilization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.civs {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) UpdateCivilization(c *game.Civilization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.civs[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	r.civs[c.ID] = &cp
	return nil
}

func (r *memRepo) DeleteCivilization(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.civs, id)
	return nil
}

func (r *memRepo) ListCivilizations() ([]game.Civilization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]game.Civilization, 0, len(r.civs))
	for _, c := range r.civs {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memRepo) CreateWar(w *game.War) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.ID = r.id()
	cp := *w
	r.wars[w.ID] = &cp
	return nil
}

func (r *memRepo) UpdateWar(w *game.War) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *w
	r.wars[w.ID] = &cp
	return nil
}

func (r *memRepo) FindOngoingWar(a, b uint) (*game.War, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.wars {
		if w.Status != game.WarOngoing {
			continue
		}
		if (w.AttackerID == a && w.DefenderID == b) || (w.AttackerID == b && w.DefenderID == a) {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) ListOngoingWars(civID uint) ([]game.War, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []game.War
	for _, w := range r.wars {
		if w.Status == game.WarOngoing && (w.AttackerID == civID || w.DefenderID == civID) {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memRepo) CreatePeaceOffer(o *game.PeaceOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = r.id()
	cp := *o
	r.offers[o.ID] = &cp
	return nil
}

func (r *memRepo) UpdatePeaceOffer(o *game.PeaceOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.offers[o.ID] = &cp
	return nil
}

func (r *memRepo) FindPendingPeaceOffer(warID, receiverID uint) (*game.PeaceOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.offers {
		if o.WarID == warID && o.ReceiverID == receiverID && o.Status == game.OfferPending {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) CreateAlliance(a *game.Alliance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.id()
	cp := *a
	r.alliances[a.ID] = &cp
	return nil
}

func (r *memRepo) UpdateAlliance(a *game.Alliance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.alliances[a.ID] = &cp
	return nil
}

func (r *memRepo) DeleteAlliance(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.alliances, id)
	return nil
}

func (r *memRepo) GetAllianceByName(name string) (*game.Alliance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, al := range r.alliances {
		if al.Name == name {
			cp := *al
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) FindAllianceOf(civID uint) (*game.Alliance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, al := range r.alliances {
		if al.HasMember(civID) {
			cp := *al
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memRepo) CreateTrade(t *game.TradeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.id()
	cp := *t
	r.trades[t.ID] = &cp
	return nil
}

func (r *memRepo) GetTradeByID(id uint) (*game.TradeRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trades[id]
	if !ok {
		return nil, errors.New("trade not found")
	}
	cp := *t
	return &cp, nil
}

func (r *memRepo) UpdateTrade(t *game.TradeRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.trades[t.ID] = &cp
	return nil
}

func (r *memRepo) ExpirePendingTrades(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.trades {
		if t.Status == game.OfferPending && !t.ExpiresAt.After(now) {
			t.Status = game.OfferExpired
			n++
		}
	}
	return n, nil
}

func (r *memRepo) CreateCardSelection(s *game.CardSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.id()
	cp := *s
	r.selections[s.ID] = &cp
	return nil
}

func (r *memRepo) UpdateCardSelection(s *game.CardSelection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.selections[s.ID] = &cp
	return nil
}

func (r *memRepo) FindPendingCardSelection(civID uint) (*game.CardSelection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best *game.CardSelection
	for _, s := range r.selections {
		if s.CivilizationID == civID && s.Status == game.OfferPending {
			if best == nil || s.ID > best.ID {
				best = s
			}
		}
	}
	if best == nil {
		return nil, nil
	}
	cp := *best
	return &cp, nil
}

func (r *memRepo) GetCooldown(civID uint, command string) (*game.Cooldown, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cd, ok := r.cooldowns[cooldownKey(civID, command)]
	if !ok {
		return nil, nil
	}
	cp := *cd
	return &cp, nil
}

func (r *memRepo) SetCooldown(civID uint, command string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cooldowns[cooldownKey(civID, command)] = &game.Cooldown{
		CivilizationID: civID,
		Command:        command,
		ExpiresAt:      expiresAt,
	}
	return nil
}

func (r *memRepo) PurgeExpiredCooldowns(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k, cd := range r.cooldowns {
		if !cd.ExpiresAt.After(now) {
			delete(r.cooldowns, k)
			n++
		}
	}
	return n, nil
}

func cooldownKey(civID uint, command string) string {
	return fmt.Sprintf("%d:%s", civID, command)
}

func (r *memRepo) LogEvent(civID uint, kind, title, description string, effects *game.Effect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, game.EventRecord{
		CivilizationID: civID,
		Kind:           kind,
		Title:          title,
		Description:    description,
		Effects:        effects,
	})
	return nil
}

func (r *memRepo) RecentEvents(limit int) ([]game.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]game.EventRecord{}, r.events...)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *memRepo) EventsForCivilization(civID uint, limit int) ([]game.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []game.EventRecord
	for _, ev := range r.events {
		if ev.CivilizationID == civID {
			out = append(out, ev)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func testConfig() *config.LoadedConfig {
	return &config.LoadedConfig{
		ServerAddress:          ":0",
		DatabasePath:           ":memory:",
		EventTickMinutes:       30,
		IncomeTickMinutes:      10,
		CleanupTickMinutes:     5,
		CooldownSeconds:        map[string]int{"harvest": 300, "attack": 600, "train": 120},
		TradeTTLMinutes:        60,
		SacrificeWindowSeconds: 1,
	}
}

func newTestService(r *memRepo) *Service {
	eng := engine.New(1)
	return New(r, eng, testConfig(), nil)
}

package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateCivilization(c *game.Civilization) error {
	return r.db.Create(c).Error
}

func (r *sqliteRepository) GetCivilizationByID(id uint) (*game.Civilization, error) {
	var c game.Civilization
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) GetCivilizationByUser(userID string) (*game.Civilization, error) {
	var c game.Civilization
	err := r.db.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) UpdateCivilization(c *game.Civilization) error {
	return r.db.Save(c).Error
}

func (r *sqliteRepository) DeleteCivilization(id uint) error {
	return r.db.Delete(&game.Civilization{}, id).Error
}

func (r *sqliteRepository) ListCivilizations() ([]game.Civilization, error) {
	var civs []game.Civilization
	if err := r.db.Find(&civs).Error; err != nil {
		return nil, err
	}
	return civs, nil
}

func (r *sqliteRepository) CreateWar(w *game.War) error {
	return r.db.Create(w).Error
}

func (r *sqliteRepository) UpdateWar(w *game.War) error {
	return r.db.Save(w).Error
}

func (r *sqliteRepository) FindOngoingWar(a, b uint) (*game.War, error) {
	var w game.War
	err := r.db.
		Where("status = ?", game.WarOngoing).
		Where("(attacker_id = ? AND defender_id = ?) OR (attacker_id = ? AND defender_id = ?)", a, b, b, a).
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *sqliteRepository) ListOngoingWars(civID uint) ([]game.War, error) {
	var wars []game.War
	err := r.db.
		Where("status = ?", game.WarOngoing).
		Where("attacker_id = ? OR defender_id = ?", civID, civID).
		Find(&wars).Error
	if err != nil {
		return nil, err
	}
	return wars, nil
}

func (r *sqliteRepository) CreatePeaceOffer(o *game.PeaceOffer) error {
	return r.db.Create(o).Error
}

func (r *sqliteRepository) UpdatePeaceOffer(o *game.PeaceOffer) error {
	return r.db.Save(o).Error
}

func (r *sqliteRepository) FindPendingPeaceOffer(warID, receiverID uint) (*game.PeaceOffer, error) {
	var o game.PeaceOffer
	err := r.db.
		Where("war_id = ? AND receiver_id = ? AND status = ?", warID, receiverID, game.OfferPending).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *sqliteRepository) CreateAlliance(a *game.Alliance) error {
	return r.db.Create(a).Error
}

func (r *sqliteRepository) UpdateAlliance(a *game.Alliance) error {
	return r.db.Save(a).Error
}

func (r *sqliteRepository) DeleteAlliance(id uint) error {
	return r.db.Delete(&game.Alliance{}, id).Error
}

func (r *sqliteRepository) GetAllianceByName(name string) (*game.Alliance, error) {
	var al game.Alliance
	err := r.db.Where("name = ?", name).First(&al).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &al, nil
}

// FindAllianceOf scans the member lists; alliances are few and the
// JSON column keeps membership with the row.
func (r *sqliteRepository) FindAllianceOf(civID uint) (*game.Alliance, error) {
	var als []game.Alliance
	if err := r.db.Find(&als).Error; err != nil {
		return nil, err
	}
	for i := range als {
		if als[i].HasMember(civID) {
			return &als[i], nil
		}
	}
	return nil, nil
}

func (r *sqliteRepository) CreateTrade(t *game.TradeRequest) error {
	return r.db.Create(t).Error
}

func (r *sqliteRepository) GetTradeByID(id uint) (*game.TradeRequest, error) {
	var t game.TradeRequest
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *sqliteRepository) UpdateTrade(t *game.TradeRequest) error {
	return r.db.Save(t).Error
}

func (r *sqliteRepository) ExpirePendingTrades(now time.Time) (int64, error) {
	res := r.db.Model(&game.TradeRequest{}).
		Where("status = ? AND expires_at <= ?", game.OfferPending, now).
		Update("status", game.OfferExpired)
	return res.RowsAffected, res.Error
}

func (r *sqliteRepository) CreateCardSelection(s *game.CardSelection) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) UpdateCardSelection(s *game.CardSelection) error {
	return r.db.Save(s).Error
}

func (r *sqliteRepository) FindPendingCardSelection(civID uint) (*game.CardSelection, error) {
	var s game.CardSelection
	err := r.db.
		Where("civilization_id = ? AND status = ?", civID, game.OfferPending).
		Order("id DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) GetCooldown(civID uint, command string) (*game.Cooldown, error) {
	var cd game.Cooldown
	err := r.db.
		Where("civilization_id = ? AND command = ?", civID, command).
		First(&cd).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cd, nil
}

func (r *sqliteRepository) SetCooldown(civID uint, command string, expiresAt time.Time) error {
	existing, err := r.GetCooldown(civID, command)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.ExpiresAt = expiresAt
		return r.db.Save(existing).Error
	}
	return r.db.Create(&game.Cooldown{
		CivilizationID: civID,
		Command:        command,
		ExpiresAt:      expiresAt,
	}).Error
}

func (r *sqliteRepository) PurgeExpiredCooldowns(now time.Time) (int64, error) {
	res := r.db.Where("expires_at <= ?", now).Delete(&game.Cooldown{})
	return res.RowsAffected, res.Error
}

func (r *sqliteRepository) LogEvent(civID uint, kind, title, description string, effects *game.Effect) error {
	return r.db.Create(&game.EventRecord{
		CivilizationID: civID,
		Kind:           kind,
		Title:          title,
		Description:    description,
		Effects:        effects,
	}).Error
}

func (r *sqliteRepository) RecentEvents(limit int) ([]game.EventRecord, error) {
	var events []game.EventRecord
	if err := r.db.Order("id DESC").Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *sqliteRepository) EventsForCivilization(civID uint, limit int) ([]game.EventRecord, error) {
	var events []game.EventRecord
	err := r.db.
		Where("civilization_id = ?", civID).
		Order("id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

// ListStore returns the upgrade shop.
func (h *CivHandler) ListStore(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListUpgrades())
}

type buyUpgradeRequest struct {
	Upgrade string `json:"upgrade" binding:"required"`
}

// BuyUpgrade purchases one structural upgrade.
func (h *CivHandler) BuyUpgrade(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req buyUpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	up, err := h.svc.BuyUpgrade(id, req.Upgrade)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: up})
}

// VisitBlackMarket charges the entry fee and rolls the item pool.
func (h *CivHandler) VisitBlackMarket(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	item, err := h.svc.VisitBlackMarket(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: item})
}

type useItemRequest struct {
	Item     string `json:"item" binding:"required"`
	TargetID uint   `json:"target_id"`
}

// UseItem consumes an inventory item.
func (h *CivHandler) UseItem(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req useItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	res, err := h.svc.UseItem(id, req.Item, req.TargetID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: res})
}

// Sacrifice arms the altar ritual against a target. ConfirmSacrifice
// must follow within the configured window.
func (h *CivHandler) Sacrifice(c *gin.Context) {
	id, target, ok := h.bindTarget(c)
	if !ok {
		return
	}
	res, err := h.svc.UseItem(id, game.ItemAltar, target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: res})
}

// ConfirmSacrifice finishes an armed sacrifice inside its window.
func (h *CivHandler) ConfirmSacrifice(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	res, err := h.svc.ConfirmSacrifice(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: res})
}

type tradeRequestBody struct {
	TargetID uint           `json:"target_id" binding:"required"`
	Offer    game.Resources `json:"offer"`
	Request  game.Resources `json:"request"`
}

// CreateTrade files a resource swap offer.
func (h *CivHandler) CreateTrade(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req tradeRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	t, err := h.svc.CreateTrade(id, req.TargetID, req.Offer, req.Request)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

type acceptTradeRequest struct {
	TradeID uint `json:"trade_id" binding:"required"`
}

// AcceptTrade settles a pending trade.
func (h *CivHandler) AcceptTrade(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req acceptTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.svc.AcceptTrade(id, req.TradeID); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "accepted"})
}

type allianceNameRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateAlliance founds a named pact led by the caller.
func (h *CivHandler) CreateAlliance(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req allianceNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	a, err := h.svc.CreateAlliance(id, req.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GetAlliance returns the caller's alliance, null when unaligned.
func (h *CivHandler) GetAlliance(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	a, err := h.svc.AllianceOf(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if a == nil {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: nil})
		return
	}
	c.JSON(http.StatusOK, a)
}

// RequestJoinAlliance files a join request with a named alliance.
func (h *CivHandler) RequestJoinAlliance(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req allianceNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.svc.RequestJoinAlliance(id, req.Name); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "requested"})
}

// AcceptJoinRequest lets the leader admit an applicant.
func (h *CivHandler) AcceptJoinRequest(c *gin.Context) {
	id, target, ok := h.bindTarget(c)
	if !ok {
		return
	}
	if err := h.svc.AcceptJoinRequest(id, target); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "joined"})
}

// LeaveAlliance removes the caller from its alliance.
func (h *CivHandler) LeaveAlliance(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	if err := h.svc.LeaveAlliance(id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "left"})
}

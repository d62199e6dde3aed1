package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
)

type targetRequest struct {
	TargetID uint `json:"target_id" binding:"required"`
}

func (h *CivHandler) bindTarget(c *gin.Context) (uint, uint, bool) {
	id, ok := civID(c)
	if !ok {
		return 0, 0, false
	}
	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return 0, 0, false
	}
	return id, req.TargetID, true
}

// DeclareWar opens a war against another civilization.
func (h *CivHandler) DeclareWar(c *gin.Context) {
	id, target, ok := h.bindTarget(c)
	if !ok {
		return
	}
	w, err := h.svc.DeclareWar(id, target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// Attack fights one battle inside an ongoing war.
func (h *CivHandler) Attack(c *gin.Context) {
	id, target, ok := h.bindTarget(c)
	if !ok {
		return
	}
	res, err := h.svc.Attack(id, target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: res})
}

// Siege grinds the defender's economy.
func (h *CivHandler) Siege(c *gin.Context) {
	id, target, ok := h.bindTarget(c)
	if !ok {
		return
	}
	res, err := h.svc.Siege(id, target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: res})
}

// Stealth runs a covert operation.
func (h *CivHandler) Stealth(c *gin.Context) {
	id, target, ok := h.bindTarget(c)
	if !ok {
		return
	}
	res, err := h.svc.Stealth(id, target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: res})
}

// OfferPeace files a peace proposal.
func (h *CivHandler) OfferPeace(c *gin.Context) {
	id, target, ok := h.bindTarget(c)
	if !ok {
		return
	}
	offer, err := h.svc.OfferPeace(id, target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// AcceptPeace ends a war with a pending offer.
func (h *CivHandler) AcceptPeace(c *gin.Context) {
	id, target, ok := h.bindTarget(c)
	if !ok {
		return
	}
	if err := h.svc.AcceptPeace(id, target); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "peace"})
}

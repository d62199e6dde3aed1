package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/game"
)

type createCivRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Ideology string `json:"ideology"`
}

// CreateCivilization founds a new nation.
func (h *CivHandler) CreateCivilization(c *gin.Context) {
	var req createCivRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	civ, err := h.svc.CreateCivilization(req.UserID, req.Name, game.Ideology(req.Ideology))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, civ)
}

type setIdeologyRequest struct {
	Ideology string `json:"ideology" binding:"required"`
}

// SetIdeology commits an unaligned nation to a government, once.
func (h *CivHandler) SetIdeology(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req setIdeologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.svc.SetIdeology(id, game.Ideology(req.Ideology)); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "chosen"})
}

// GetCivilization returns one nation's raw record.
func (h *CivHandler) GetCivilization(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	civ, err := h.svc.GetCivilization(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, civ)
}

// GetStatus returns the civilization with derived power and risk
// numbers.
func (h *CivHandler) GetStatus(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	status, err := h.svc.GetStatus(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Harvest runs an on-demand income cycle.
func (h *CivHandler) Harvest(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	report, err := h.svc.Harvest(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: report})
}

type trainRequest struct {
	Count int  `json:"count" binding:"required,min=1"`
	Spies bool `json:"spies"`
}

// Train converts resources into soldiers or spies.
func (h *CivHandler) Train(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req trainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	res, err := h.svc.Train(id, req.Count, req.Spies)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: res})
}

// PendingCards returns the open advancement selection.
func (h *CivHandler) PendingCards(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	sel, err := h.svc.PendingCards(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if sel == nil {
		c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyResult: sel})
}

type selectCardRequest struct {
	Card string `json:"card" binding:"required"`
}

// SelectCard resolves a pending advancement choice.
func (h *CivHandler) SelectCard(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	var req selectCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.svc.SelectCard(id, req.Card); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "selected"})
}

// Leaderboard ranks civilizations; optional ?category= and ?limit=.
func (h *CivHandler) Leaderboard(c *gin.Context) {
	limit := 10
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	category := c.DefaultQuery("category", "overall")
	entries, err := h.svc.Leaderboard(category, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// CivEvents returns one civilization's activity log.
func (h *CivHandler) CivEvents(c *gin.Context) {
	id, ok := civID(c)
	if !ok {
		return
	}
	limit := 50
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	events, err := h.svc.EventsFor(id, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// RecentEvents returns the world activity log.
func (h *CivHandler) RecentEvents(c *gin.Context) {
	limit := 50
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	events, err := h.svc.RecentEvents(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchEvents})
		return
	}
	c.JSON(http.StatusOK, events)
}

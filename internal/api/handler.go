package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/service"
)

// CivHandler groups all civilization-related HTTP handlers.
type CivHandler struct {
	svc *service.Service
}

// NewCivHandler creates a new CivHandler backed by the given service.
func NewCivHandler(svc *service.Service) *CivHandler {
	return &CivHandler{svc: svc}
}

// civID parses the :civID route parameter.
func civID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("civID"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCivilizationID})
		return 0, false
	}
	return uint(id), true
}

// respondErr maps service sentinel errors to HTTP statuses.
func respondErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrCivNotFound),
		errors.Is(err, service.ErrTargetNotFound),
		errors.Is(err, service.ErrAllianceNotFound),
		errors.Is(err, service.ErrTradeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrOnCooldown):
		status = http.StatusTooManyRequests
	case errors.Is(err, service.ErrUserHasCivilization),
		errors.Is(err, service.ErrAlreadyAtWar),
		errors.Is(err, service.ErrPeaceOfferExists),
		errors.Is(err, service.ErrAllianceNameTaken),
		errors.Is(err, service.ErrAlreadyInAlliance),
		errors.Is(err, service.ErrJoinRequestPending),
		errors.Is(err, service.ErrIdeologySet),
		errors.Is(err, service.ErrUpgradeOwned):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidIdeology),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrSelfTarget),
		errors.Is(err, service.ErrInsufficientResources),
		errors.Is(err, service.ErrNotAtWar),
		errors.Is(err, service.ErrAlliedTarget),
		errors.Is(err, service.ErrNoPendingPeaceOffer),
		errors.Is(err, service.ErrNotEnoughSoldiers),
		errors.Is(err, service.ErrNotEnoughSpies),
		errors.Is(err, service.ErrItemNotOwned),
		errors.Is(err, service.ErrItemNeedsTarget),
		errors.Is(err, service.ErrUpgradeUnknown),
		errors.Is(err, service.ErrNoPendingSelection),
		errors.Is(err, service.ErrCardNotOffered),
		errors.Is(err, service.ErrTradeNotPending),
		errors.Is(err, service.ErrNotTradeReceiver),
		errors.Is(err, service.ErrAllianceNameRequired),
		errors.Is(err, service.ErrNotInAlliance),
		errors.Is(err, service.ErrNotAllianceLeader),
		errors.Is(err, service.ErrNoJoinRequest),
		errors.Is(err, service.ErrSacrificeNotPending):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{constants.JSONKeyError: err.Error()})
}

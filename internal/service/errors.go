package service

import "errors"

var (
	ErrCivNotFound           = errors.New("civilization not found")
	ErrTargetNotFound        = errors.New("target civilization not found")
	ErrUserHasCivilization   = errors.New("user already controls a civilization")
	ErrInvalidIdeology       = errors.New("unknown ideology")
	ErrNameRequired          = errors.New("civilization name is required")
	ErrSelfTarget            = errors.New("cannot target your own civilization")
	ErrOnCooldown            = errors.New("command is on cooldown")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrAlreadyAtWar          = errors.New("war already ongoing with this civilization")
	ErrNotAtWar              = errors.New("no ongoing war with this civilization")
	ErrAlliedTarget          = errors.New("cannot declare war on an ally")
	ErrNoPendingPeaceOffer   = errors.New("no pending peace offer from this civilization")
	ErrPeaceOfferExists      = errors.New("a peace offer is already pending")
	ErrNotEnoughSoldiers     = errors.New("not enough soldiers")
	ErrNotEnoughSpies        = errors.New("not enough spies")
	ErrItemNotOwned          = errors.New("item not in inventory")
	ErrItemNeedsTarget       = errors.New("item requires a target civilization")
	ErrUpgradeUnknown        = errors.New("unknown store upgrade")
	ErrUpgradeOwned          = errors.New("upgrade already purchased")
	ErrNoPendingSelection    = errors.New("no pending card selection")
	ErrCardNotOffered        = errors.New("card was not offered in this selection")
	ErrTradeNotFound         = errors.New("trade request not found")
	ErrTradeNotPending       = errors.New("trade request is not pending")
	ErrNotTradeReceiver      = errors.New("only the receiver may accept a trade")
	ErrAllianceNameRequired  = errors.New("alliance name is required")
	ErrAllianceNameTaken     = errors.New("alliance name is already taken")
	ErrAllianceNotFound      = errors.New("alliance not found")
	ErrAlreadyInAlliance     = errors.New("already a member of an alliance")
	ErrNotInAlliance         = errors.New("not a member of any alliance")
	ErrNotAllianceLeader     = errors.New("only the alliance leader may do that")
	ErrJoinRequestPending    = errors.New("a join request is already pending")
	ErrNoJoinRequest         = errors.New("no join request from that civilization")
	ErrIdeologySet           = errors.New("ideology has already been chosen")
	ErrSacrificeNotPending   = errors.New("no sacrifice awaiting confirmation")
)

package api

import (
	"github.com/gin-gonic/gin"

	"github.com/unkownPen/nationbotg-sub000/internal/constants"
	"github.com/unkownPen/nationbotg-sub000/internal/service"
)

// SetupRouter wires every route onto a gin engine.
func SetupRouter(svc *service.Service, hub *FeedHub) *gin.Engine {
	r := gin.Default()
	h := NewCivHandler(svc)

	apiGroup := r.Group(constants.RouteAPIPrefix)
	{
		apiGroup.POST(constants.RouteCivilizations, h.CreateCivilization)
		apiGroup.GET(constants.RouteCivilizationByID, h.GetCivilization)
		apiGroup.POST(constants.RouteIdeology, h.SetIdeology)
		apiGroup.GET(constants.RouteStatus, h.GetStatus)
		apiGroup.POST(constants.RouteHarvest, h.Harvest)
		apiGroup.POST(constants.RouteTrain, h.Train)

		apiGroup.POST(constants.RouteDeclareWar, h.DeclareWar)
		apiGroup.POST(constants.RouteAttack, h.Attack)
		apiGroup.POST(constants.RouteSiege, h.Siege)
		apiGroup.POST(constants.RouteStealth, h.Stealth)
		apiGroup.POST(constants.RoutePeaceOffer, h.OfferPeace)
		apiGroup.POST(constants.RoutePeaceAccept, h.AcceptPeace)

		apiGroup.POST(constants.RouteTradeCreate, h.CreateTrade)
		apiGroup.POST(constants.RouteTradeAccept, h.AcceptTrade)
		apiGroup.POST(constants.RouteAlliance, h.CreateAlliance)
		apiGroup.GET(constants.RouteAlliance, h.GetAlliance)
		apiGroup.POST(constants.RouteAllianceJoin, h.RequestJoinAlliance)
		apiGroup.POST(constants.RouteAllianceAccept, h.AcceptJoinRequest)
		apiGroup.POST(constants.RouteAllianceLeave, h.LeaveAlliance)

		apiGroup.GET(constants.RouteStore, h.ListStore)
		apiGroup.POST(constants.RouteStoreBuy, h.BuyUpgrade)
		apiGroup.POST(constants.RouteBlackmarket, h.VisitBlackMarket)
		apiGroup.POST(constants.RouteUseItem, h.UseItem)
		apiGroup.POST(constants.RouteSacrifice, h.Sacrifice)
		apiGroup.POST(constants.RouteSacrificeConfirm, h.ConfirmSacrifice)

		apiGroup.GET(constants.RouteCards, h.PendingCards)
		apiGroup.POST(constants.RouteCardSelect, h.SelectCard)

		apiGroup.GET(constants.RouteCivEvents, h.CivEvents)
		apiGroup.GET(constants.RouteLeaderboard, h.Leaderboard)
		apiGroup.GET(constants.RouteEvents, h.RecentEvents)
		apiGroup.GET(constants.RouteEventFeed, hub.Serve)
	}

	return r
}

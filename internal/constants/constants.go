package constants

// Centralized constants for env keys, routes, JSON keys and messages.
const (
	// Environment variable keys
	EnvConfigPath  = "WARBOT_CONFIG"
	EnvDatabaseDSN = "WARBOT_DB"
	EnvListenAddr  = "WARBOT_ADDR"

	// Default file locations
	DefaultConfigPath = "warbot_config.json"
	DefaultDBPath     = "warbot.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteCivilizations    = "/civilizations"
	RouteCivilizationByID = "/civilizations/:civID"
	RouteStatus           = "/civilizations/:civID/status"
	RouteHarvest          = "/civilizations/:civID/harvest"
	RouteTrain            = "/civilizations/:civID/train"
	RouteDeclareWar       = "/civilizations/:civID/war"
	RouteAttack           = "/civilizations/:civID/attack"
	RouteSiege            = "/civilizations/:civID/siege"
	RouteStealth          = "/civilizations/:civID/stealth"
	RoutePeaceOffer       = "/civilizations/:civID/peace"
	RoutePeaceAccept      = "/civilizations/:civID/peace/accept"
	RouteTradeCreate      = "/civilizations/:civID/trade"
	RouteTradeAccept      = "/civilizations/:civID/trade/accept"
	RouteIdeology         = "/civilizations/:civID/ideology"
	RouteAlliance         = "/civilizations/:civID/alliance"
	RouteAllianceJoin     = "/civilizations/:civID/alliance/join"
	RouteAllianceAccept   = "/civilizations/:civID/alliance/accept"
	RouteAllianceLeave    = "/civilizations/:civID/alliance/leave"
	RouteStore            = "/civilizations/:civID/store"
	RouteStoreBuy         = "/civilizations/:civID/store/buy"
	RouteBlackmarket      = "/civilizations/:civID/blackmarket"
	RouteUseItem          = "/civilizations/:civID/items/use"
	RouteCards            = "/civilizations/:civID/cards"
	RouteCardSelect       = "/civilizations/:civID/cards/select"
	RouteSacrifice        = "/civilizations/:civID/sacrifice"
	RouteSacrificeConfirm = "/civilizations/:civID/sacrifice/confirm"
	RouteCivEvents        = "/civilizations/:civID/events"
	RouteLeaderboard      = "/leaderboard"
	RouteEvents           = "/events"
	RouteEventFeed        = "/events/feed"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyStatus = "status"
	JSONKeyResult = "result"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidCivilizationID  = "Invalid civilization ID"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchEvents      = "Failed to fetch events"
)

// Logging field names
const (
	LogFieldCivID    = "civ_id"
	LogFieldTargetID = "target_id"
	LogFieldUserID   = "user_id"
	LogFieldWarID    = "war_id"
	LogFieldEvent    = "event"
	LogFieldItem     = "item"
	LogFieldCommand  = "command"
	LogFieldAmount   = "amount"
	LogFieldAddr     = "addr"
	LogFieldSource   = "source"
)

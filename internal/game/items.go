package game

// Item command identifiers. Offensive commands resolve against a target;
// the rest apply to the owner.
const (
	ItemCmdNuke         = "nuke"
	ItemCmdBomb         = "bomb"
	ItemCmdBackstab     = "backstab"
	ItemCmdPropaganda   = "propaganda"
	ItemCmdSuperSpy     = "superspy"
	ItemCmdObliterate   = "obliterate"
	ItemCmdSacrifice    = "sacrifice"
	ItemCmdLastStand    = "laststand"
	ItemCmdHireMercs    = "hiremercs"
	ItemCmdBoostTech    = "boosttech"
	ItemCmdMintGold     = "mintgold"
	ItemCmdSuperHarvest = "superharvest"
	ItemCmdMegaInvent   = "megainvent"
	ItemCmdLuckyStrike  = "luckystrike"
	ItemCmdShield       = "shield"
	ItemCmdMirror       = "mirror"
)

// Defensive item names checked before offensive effects resolve, and
// the altar consumed by the two-step sacrifice ritual.
const (
	ItemMirror = "Mirror"
	ItemShield = "Anti-Nuke Shield"
	ItemAltar  = "Sacrificial Altar"
)

// Item rarity tiers, from the common shelf to the near-mythical.
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityLegendary = "legendary"
)

// HyperItem describes one purchasable artifact. Weight drives the black
// market roll; rarer tiers carry smaller weights.
type HyperItem struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Rarity      string `json:"rarity"`
	Weight      int    `json:"weight"`
	Description string `json:"description"`
}

// BlackMarketEntryFee is the flat gold cost of one black market visit.
const BlackMarketEntryFee = 1000

// BlackMarketPool lists every item the black market can yield, with its
// roll weight. Mirror, Sacrifice and Last Stand exist as commands but are
// never sold here.
var BlackMarketPool = []HyperItem{
	{Name: "Lucky Charm", Rarity: RarityCommon, Command: ItemCmdLuckyStrike, Weight: 35, Description: "Guarantees a critical on your next action"},
	{Name: "Propaganda Kit", Rarity: RarityCommon, Command: ItemCmdPropaganda, Weight: 35, Description: "Turns enemy soldiers to your side"},
	{Name: "Mercenary Contract", Rarity: RarityCommon, Command: ItemCmdHireMercs, Weight: 30, Description: "Hires a band of mercenaries and spies"},
	{Name: "Spy Network", Rarity: RarityUncommon, Command: ItemCmdSuperSpy, Weight: 20, Description: "Runs a full espionage operation against a rival"},
	{Name: "Ancient Scroll", Rarity: RarityUncommon, Command: ItemCmdBoostTech, Weight: 20, Description: "Advances your technology"},
	{Name: "Gold Mint", Rarity: RarityUncommon, Command: ItemCmdMintGold, Weight: 20, Description: "Mints a fortune in gold"},
	{Name: "Harvest Engine", Rarity: RarityUncommon, Command: ItemCmdSuperHarvest, Weight: 20, Description: "A bumper harvest for your people"},
	{Name: "Nuclear Warhead", Rarity: RarityRare, Command: ItemCmdNuke, Weight: 8, Description: "Devastates an entire civilization"},
	{Name: "Dagger", Rarity: RarityRare, Command: ItemCmdBackstab, Weight: 8, Description: "A treacherous strike against an ally or enemy"},
	{Name: "Missiles", Rarity: RarityRare, Command: ItemCmdBomb, Weight: 8, Description: "Bombards a rival's cities"},
	{Name: "HyperLaser", Rarity: RarityLegendary, Command: ItemCmdObliterate, Weight: 1, Description: "Erases a civilization from the map"},
	{Name: "Tech Core", Rarity: RarityLegendary, Command: ItemCmdMegaInvent, Weight: 1, Description: "A massive leap in technology"},
	{Name: "Anti-Nuke Shield", Rarity: RarityLegendary, Command: ItemCmdShield, Weight: 2, Description: "Absorbs one incoming attack"},
}

// ItemByName looks an item up in the full catalog, including the
// non-purchasable ones.
func ItemByName(name string) (HyperItem, bool) {
	for _, it := range itemCatalog {
		if it.Name == name {
			return it, true
		}
	}
	return HyperItem{}, false
}

// itemCatalog extends the black market pool with the items that only
// enter inventories through events or admin grants.
var itemCatalog = append([]HyperItem{
	{Name: ItemMirror, Rarity: RarityLegendary, Command: ItemCmdMirror, Weight: 0, Description: "Reflects one incoming attack back at its sender"},
	{Name: ItemAltar, Rarity: RarityLegendary, Command: ItemCmdSacrifice, Weight: 0, Description: "Destroys you and your target together"},
	{Name: "Last Stand", Rarity: RarityLegendary, Command: ItemCmdLastStand, Weight: 0, Description: "A desperate rally for an impoverished nation"},
}, BlackMarketPool...)

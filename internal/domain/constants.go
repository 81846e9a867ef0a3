package domain

// Well-known item keys seeded by the default catalog
const (
	ItemTopHat    = "top_hat"
	ItemCrown     = "crown"
	ItemPencil    = "pencil"
	ItemEraser    = "eraser"
	ItemGoldStar  = "gold_star"
	ItemPartyHat  = "party_hat"
	ItemThinkCap  = "thinking_cap"
	ItemSudokuBox = "sudoku_box"
)

// MissedDefaultCount is how many missed dates are listed when the caller gives none
const MissedDefaultCount = 10

// MissedMaxCount caps how many missed dates one request may ask for
const MissedMaxCount = 365

// MissedSearchLimit caps how far back the missed search walks, in days
const MissedSearchLimit = 3650

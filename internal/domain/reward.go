package domain

// RewardTier pays Amount once for every streak at least MinLength days long.
// Tiers are cumulative: a streak collects every tier it qualifies for.
type RewardTier struct {
	MinLength int `json:"min_length"`
	Amount    int `json:"amount"`
}

// GameSettings are the admin-tunable economy knobs, passed explicitly to
// the reward engine and the drop selector on each call.
type GameSettings struct {
	ItemDropRate     float64 `json:"item_drop_rate"`
	CurrencyPerSolve int     `json:"currency_per_solve"`
}

// Default economy values
const (
	DefaultItemDropRate     = 0.1
	DefaultCurrencyPerSolve = 10
)

// DefaultGameSettings returns the settings used before an admin changes anything
func DefaultGameSettings() GameSettings {
	return GameSettings{
		ItemDropRate:     DefaultItemDropRate,
		CurrencyPerSolve: DefaultCurrencyPerSolve,
	}
}

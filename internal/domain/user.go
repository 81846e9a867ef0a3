package domain

// User is a chat participant. Created on first interaction and never hard-deleted.
type User struct {
	ID      string  `json:"user_id"`
	Name    string  `json:"name"`
	Balance int     `json:"balance"`
	HatKey  *string `json:"hat,omitempty"`
}

// HasHat reports whether the user currently wears the given item
func (u User) HasHat(itemKey string) bool {
	return u.HatKey != nil && *u.HatKey == itemKey
}

// Account is the read model returned to the dispatcher for profile views
type Account struct {
	User      User            `json:"user"`
	Inventory []InventoryItem `json:"inventory"`
}

// InventoryItem is one ownership record joined with its catalog entry
type InventoryItem struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

package domain

// Item is static catalog data. Rarity is a relative drop weight: higher drops more often.
type Item struct {
	Key       string  `json:"key"`
	Name      string  `json:"name"`
	Emoji     string  `json:"emoji,omitempty"`
	Droppable bool    `json:"droppable"`
	Rarity    float64 `json:"rarity"`
	IsHat     bool    `json:"is_hat"`
}

// CanDrop reports whether the item may be chosen by the drop selector
func (i Item) CanDrop() bool {
	return i.Droppable && i.Rarity > 0
}

package drop

import (
	"github.com/osse101/CrossBot_Go/internal/domain"
	"github.com/osse101/CrossBot_Go/internal/utils"
)

// Selector rolls random item drops. It never touches ownership;
// the caller grants whatever comes back.
type Selector struct {
	rnd func() float64
}

// NewSelector creates a selector backed by utils.RandomFloat
func NewSelector() *Selector {
	return NewSelectorWithRand(utils.RandomFloat)
}

// NewSelectorWithRand creates a selector over an injected [0,1) source
func NewSelectorWithRand(rnd func() float64) *Selector {
	return &Selector{rnd: rnd}
}

// ChooseDrop draws once against rate and, on a hit, picks one droppable
// item with probability proportional to its rarity. Returns nil on a miss
// or when nothing can drop.
func (s *Selector) ChooseDrop(rate float64, items []domain.Item) *domain.Item {
	if s.rnd() >= rate {
		return nil
	}

	candidates := make([]domain.Item, 0, len(items))
	var totalWeight float64
	for _, item := range items {
		if !item.CanDrop() {
			continue
		}
		candidates = append(candidates, item)
		totalWeight += item.Rarity
	}
	if len(candidates) == 0 {
		return nil
	}

	r := s.rnd() * totalWeight
	cumulative := 0.0
	for i := range candidates {
		cumulative += candidates[i].Rarity
		if r < cumulative {
			picked := candidates[i]
			return &picked
		}
	}

	// Float rounding can leave r at the very top of the range
	picked := candidates[len(candidates)-1]
	return &picked
}

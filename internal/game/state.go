// Package game owns the canonical game state and its two transition
// granularities: synchronous action application and end-of-turn
// resolution. Every transition is a pure function producing a new state
// value; only the touched slices are copied.
package game

import (
	"github.com/markmckenna/catbreeder/internal/cats"
	"github.com/markmckenna/catbreeder/internal/economy"
	"github.com/markmckenna/catbreeder/internal/habitat"
)

// BreedingPair queues two cats for resolution at the next turn boundary.
// No cat id ever appears in more than one pending pair.
type BreedingPair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Transaction is one entry of the money ledger.
type Transaction struct {
	Day     int    `json:"day" csv:"day"`
	Kind    string `json:"kind" csv:"kind"` // "buy" or "sell"
	Subject string `json:"subject" csv:"subject"`
	Name    string `json:"name" csv:"name"`
	Amount  int    `json:"amount" csv:"amount"`
}

// Discovery records the first cat to exhibit a phenotype combination.
// Entries are kept in discovery order and never overwritten.
type Discovery struct {
	Key     string `json:"key"`
	CatName string `json:"cat_name"`
	Day     int    `json:"day"`
}

// State is the aggregate root. The turn engine exclusively owns
// transitions; everything else reads it or receives copies.
type State struct {
	Day   int `json:"day"`
	Money int `json:"money"`

	Roster    []cats.Cat        `json:"roster"`
	Market    economy.Market    `json:"market"`
	Inventory []economy.Listing `json:"inventory"`
	Furniture habitat.Furniture `json:"furniture"`

	Collection   []Discovery    `json:"collection"`
	PendingPairs []BreedingPair `json:"pending_pairs,omitempty"`
	PendingSales []string       `json:"pending_sales,omitempty"`
	Transactions []Transaction  `json:"transactions,omitempty"`

	TotalBred int `json:"total_bred"`
	TotalSold int `json:"total_sold"`
}

// FindCat looks a cat up in the roster by id.
func (s State) FindCat(id string) (cats.Cat, bool) {
	for _, c := range s.Roster {
		if c.ID == id {
			return c, true
		}
	}
	return cats.Cat{}, false
}

// InPendingPair reports whether a cat id is queued in any breeding pair.
func (s State) InPendingPair(id string) bool {
	for _, p := range s.PendingPairs {
		if p.A == id || p.B == id {
			return true
		}
	}
	return false
}

// PendingSale reports whether a cat id is queued for sale.
func (s State) PendingSale(id string) bool {
	for _, sale := range s.PendingSales {
		if sale == id {
			return true
		}
	}
	return false
}

// Discovered reports whether a phenotype key is already in the
// collection.
func (s State) Discovered(key string) bool {
	for _, d := range s.Collection {
		if d.Key == key {
			return true
		}
	}
	return false
}

func cloneCats(in []cats.Cat) []cats.Cat {
	out := make([]cats.Cat, len(in))
	copy(out, in)
	return out
}

func removeCat(in []cats.Cat, id string) []cats.Cat {
	out := make([]cats.Cat, 0, len(in))
	for _, c := range in {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

func removeListing(in []economy.Listing, id string) []economy.Listing {
	out := make([]economy.Listing, 0, len(in))
	for _, l := range in {
		if l.Cat.ID != id {
			out = append(out, l)
		}
	}
	return out
}

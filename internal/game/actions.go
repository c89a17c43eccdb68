package game

import (
	"github.com/markmckenna/catbreeder/internal/cats"
	"github.com/markmckenna/catbreeder/internal/habitat"
)

// Action is the closed set of player moves applied synchronously between
// turns. Invalid-but-foreseeable inputs (duplicate pairing, insufficient
// funds, missing id) are policy rejections, not errors: Apply returns the
// state unchanged and callers detect infeasibility by comparison.
type Action interface {
	isAction()
}

// AddBreedingPair queues two cats for breeding at the next turn boundary.
type AddBreedingPair struct{ A, B string }

// RemoveBreedingPair unqueues the exact pair if present.
type RemoveBreedingPair struct{ A, B string }

// ListForSale queues a cat for sale at the next turn boundary.
type ListForSale struct{ ID string }

// UnlistFromSale removes a cat from the pending sale list.
type UnlistFromSale struct{ ID string }

// BuyCat purchases a market cat at the given price.
type BuyCat struct {
	Cat   cats.Cat
	Price int
}

// BuyFurniture purchases one furniture item.
type BuyFurniture struct{ Item habitat.Item }

// SellFurniture sells one owned furniture item back at half price.
type SellFurniture struct{ Item habitat.Item }

// ToggleFavourite flips a cat's favourite flag. Favourites cannot be
// listed for sale.
type ToggleFavourite struct{ ID string }

func (AddBreedingPair) isAction()    {}
func (RemoveBreedingPair) isAction() {}
func (ListForSale) isAction()        {}
func (UnlistFromSale) isAction()     {}
func (BuyCat) isAction()             {}
func (BuyFurniture) isAction()       {}
func (SellFurniture) isAction()      {}
func (ToggleFavourite) isAction()    {}

// Apply routes one action through the central reducer. Pure and total:
// unrecognized actions leave the state unchanged.
func (e *Engine) Apply(s State, action Action) State {
	switch a := action.(type) {
	case AddBreedingPair:
		return e.applyAddBreedingPair(s, a)
	case RemoveBreedingPair:
		return e.applyRemoveBreedingPair(s, a)
	case ListForSale:
		return e.applyListForSale(s, a)
	case UnlistFromSale:
		return e.applyUnlistFromSale(s, a)
	case BuyCat:
		return e.applyBuyCat(s, a)
	case BuyFurniture:
		return e.applyBuyFurniture(s, a)
	case SellFurniture:
		return e.applySellFurniture(s, a)
	case ToggleFavourite:
		return e.applyToggleFavourite(s, a)
	default:
		return s
	}
}

func (e *Engine) applyAddBreedingPair(s State, a AddBreedingPair) State {
	if _, ok := s.FindCat(a.A); !ok {
		return s
	}
	if _, ok := s.FindCat(a.B); !ok {
		return s
	}
	if s.InPendingPair(a.A) || s.InPendingPair(a.B) {
		return s
	}
	pairs := make([]BreedingPair, len(s.PendingPairs), len(s.PendingPairs)+1)
	copy(pairs, s.PendingPairs)
	s.PendingPairs = append(pairs, BreedingPair{A: a.A, B: a.B})
	return s
}

func (e *Engine) applyRemoveBreedingPair(s State, a RemoveBreedingPair) State {
	pairs := make([]BreedingPair, 0, len(s.PendingPairs))
	removed := false
	for _, p := range s.PendingPairs {
		if !removed && p.A == a.A && p.B == a.B {
			removed = true
			continue
		}
		pairs = append(pairs, p)
	}
	if !removed {
		return s
	}
	s.PendingPairs = pairs
	return s
}

func (e *Engine) applyListForSale(s State, a ListForSale) State {
	c, ok := s.FindCat(a.ID)
	if !ok || c.Favourite || s.PendingSale(a.ID) {
		return s
	}
	sales := make([]string, len(s.PendingSales), len(s.PendingSales)+1)
	copy(sales, s.PendingSales)
	s.PendingSales = append(sales, a.ID)
	return s
}

func (e *Engine) applyUnlistFromSale(s State, a UnlistFromSale) State {
	sales := make([]string, 0, len(s.PendingSales))
	removed := false
	for _, id := range s.PendingSales {
		if id == a.ID {
			removed = true
			continue
		}
		sales = append(sales, id)
	}
	if !removed {
		return s
	}
	s.PendingSales = sales
	return s
}

func (e *Engine) applyBuyCat(s State, a BuyCat) State {
	if s.Money < a.Price {
		return s
	}
	s.Money -= a.Price
	s.Roster = append(cloneCats(s.Roster), a.Cat)
	s.Inventory = removeListing(s.Inventory, a.Cat.ID)
	s.Transactions = appendTransaction(s.Transactions, Transaction{
		Day:     s.Day,
		Kind:    "buy",
		Subject: a.Cat.ID,
		Name:    a.Cat.Name,
		Amount:  a.Price,
	})
	return s
}

func (e *Engine) applyBuyFurniture(s State, a BuyFurniture) State {
	price, ok := e.Rules.FurniturePrices.Of(a.Item)
	if !ok || s.Money < price {
		return s
	}
	s.Money -= price
	s.Furniture = s.Furniture.Add(a.Item)
	s.Transactions = appendTransaction(s.Transactions, Transaction{
		Day:     s.Day,
		Kind:    "buy",
		Subject: "furniture-" + string(a.Item),
		Name:    string(a.Item),
		Amount:  price,
	})
	return s
}

func (e *Engine) applySellFurniture(s State, a SellFurniture) State {
	price, ok := e.Rules.FurniturePrices.Of(a.Item)
	if !ok || s.Furniture.Count(a.Item) == 0 {
		return s
	}
	refund := price / 2
	s.Money += refund
	s.Furniture = s.Furniture.Remove(a.Item)
	s.Transactions = appendTransaction(s.Transactions, Transaction{
		Day:     s.Day,
		Kind:    "sell",
		Subject: "furniture-" + string(a.Item),
		Name:    string(a.Item),
		Amount:  refund,
	})
	return s
}

func (e *Engine) applyToggleFavourite(s State, a ToggleFavourite) State {
	if _, ok := s.FindCat(a.ID); !ok {
		return s
	}
	roster := cloneCats(s.Roster)
	for i := range roster {
		if roster[i].ID == a.ID {
			roster[i].Favourite = !roster[i].Favourite
		}
	}
	s.Roster = roster
	return s
}

func appendTransaction(in []Transaction, t Transaction) []Transaction {
	out := make([]Transaction, len(in), len(in)+1)
	copy(out, in)
	return append(out, t)
}

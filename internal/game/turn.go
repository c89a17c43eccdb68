package game

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/markmckenna/catbreeder/internal/cats"
	"github.com/markmckenna/catbreeder/internal/economy"
	"github.com/markmckenna/catbreeder/internal/habitat"
	"github.com/markmckenna/catbreeder/internal/rng"
)

// Sale records one resolved sale for the turn report.
type Sale struct {
	Cat   cats.Cat `json:"cat"`
	Price int      `json:"price"`
}

// Report summarizes one resolved turn. Everything in it is derived from
// the transition itself; it carries no independent state.
type Report struct {
	Day         int        `json:"day"` // Day the resolved turn started on
	Newborns    []cats.Cat `json:"newborns,omitempty"`
	Sales       []Sale     `json:"sales,omitempty"`
	Discoveries []string   `json:"discoveries,omitempty"`
	FoodCost    int        `json:"food_cost"`
	Events      []string   `json:"events,omitempty"`
}

// ProcessTurn resolves one turn as a single atomic batch. The step order
// (breeding, sales, aging, happiness, food cost, queue reset, day
// advance, inventory refresh, report) is fixed: later steps consume the
// roster mutated by earlier ones and all steps share one random stream.
// A pending pair or sale whose id no longer resolves is silently
// skipped; no step is fatal.
func (e *Engine) ProcessTurn(s State, rnd rng.Source) (State, Report) {
	report := Report{Day: s.Day}
	drift := e.Rules.Drift.Factor(s.Day)

	roster := cloneCats(s.Roster)
	collection := append([]Discovery(nil), s.Collection...)
	transactions := append([]Transaction(nil), s.Transactions...)

	// 1. Breeding. Per pair: name pick, then the offspring draws.
	for _, pair := range s.PendingPairs {
		parentA, okA := findIn(roster, pair.A)
		parentB, okB := findIn(roster, pair.B)
		if !okA || !okB {
			continue
		}
		name := cats.RandomName(rnd)
		kitten := cats.Breed(parentA, parentB, name, cats.BreedOptions{Rand: rnd})
		if _, clash := findIn(roster, kitten.ID); clash {
			kitten.ID = fmt.Sprintf("%s-d%d", kitten.ID, s.Day)
		}
		roster = append(roster, kitten)
		s.TotalBred++

		key := kitten.Phenotype.Key()
		if !discoveredIn(collection, key) {
			collection = append(collection, Discovery{Key: key, CatName: kitten.Name, Day: s.Day})
			report.Discoveries = append(report.Discoveries, key)
		}
		report.Newborns = append(report.Newborns, kitten)
	}

	// 2. Sales, fluctuation always enabled on the sell side.
	for _, id := range s.PendingSales {
		c, ok := findIn(roster, id)
		if !ok {
			continue
		}
		price := economy.Value(c, s.Market, economy.ValueOptions{
			Fluctuate: true,
			Drift:     drift,
			Rand:      rnd,
		})
		s.Money += price
		roster = removeCat(roster, id)
		s.TotalSold++
		transactions = append(transactions, Transaction{
			Day:     s.Day,
			Kind:    "sell",
			Subject: c.ID,
			Name:    c.Name,
			Amount:  price,
		})
		report.Sales = append(report.Sales, Sale{Cat: c, Price: price})
	}

	// 3. Aging.
	for i := range roster {
		roster[i].Age++
	}

	// 4. Happiness, from spot assignments over the post-birth, post-sale
	// roster.
	capacity := habitat.Capacity(s.Furniture)
	spots := habitat.AssignSpots(catIDs(roster), s.Furniture, rnd)
	spotByID := make(map[string]habitat.SpotType, len(spots))
	for _, spot := range spots {
		spotByID[spot.CatID] = spot.Type
	}
	for i := range roster {
		delta := e.Rules.Happiness.Delta(spotByID[roster[i].ID], len(roster), capacity)
		roster[i].Happiness = habitat.ClampHappiness(roster[i].Happiness + delta)
	}

	// 5. Food cost.
	report.FoodCost = e.Rules.FoodCost * len(roster)
	s.Money -= report.FoodCost

	// 6. Pending queues never carry over.
	s.PendingPairs = nil
	s.PendingSales = nil

	// 7. Advance the clock.
	s.Day++

	// 8. Inventory refresh from the same stream, priced for the new day.
	s.Inventory = economy.GenerateInventory(s.Market, e.Rules.Drift.Factor(s.Day), rnd)

	s.Roster = roster
	s.Collection = collection
	s.Transactions = transactions

	report.Events = buildEvents(report)
	return s, report
}

func buildEvents(r Report) []string {
	var events []string
	if n := len(r.Newborns); n == 1 {
		events = append(events, fmt.Sprintf("%s was born", r.Newborns[0].Name))
	} else if n > 1 {
		events = append(events, fmt.Sprintf("%d kittens were born", n))
	}
	for _, key := range r.Discoveries {
		events = append(events, fmt.Sprintf("new coat combination discovered: %s", key))
	}
	if len(r.Sales) > 0 {
		total := 0
		for _, sale := range r.Sales {
			total += sale.Price
		}
		events = append(events, fmt.Sprintf("sold %d cat(s) for %s coins", len(r.Sales), humanize.Comma(int64(total))))
	}
	if r.FoodCost > 0 {
		events = append(events, fmt.Sprintf("spent %s coins on food", humanize.Comma(int64(r.FoodCost))))
	}
	return events
}

func findIn(roster []cats.Cat, id string) (cats.Cat, bool) {
	for _, c := range roster {
		if c.ID == id {
			return c, true
		}
	}
	return cats.Cat{}, false
}

func discoveredIn(collection []Discovery, key string) bool {
	for _, d := range collection {
		if d.Key == key {
			return true
		}
	}
	return false
}

func catIDs(roster []cats.Cat) []string {
	ids := make([]string, len(roster))
	for i, c := range roster {
		ids[i] = c.ID
	}
	return ids
}

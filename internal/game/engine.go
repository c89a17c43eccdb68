package game

import (
	"github.com/markmckenna/catbreeder/internal/cats"
	"github.com/markmckenna/catbreeder/internal/economy"
	"github.com/markmckenna/catbreeder/internal/habitat"
	"github.com/markmckenna/catbreeder/internal/rng"
)

// Rules carries the tuning that parameterizes transitions but is not part
// of the persisted aggregate: daily food cost, breeding age, starter
// setup, the happiness policy, furniture prices, and the drift source.
type Rules struct {
	StartingMoney   int
	StarterCats     int
	FoodCost        int
	MinBreedingAge  int
	Happiness       habitat.HappinessPolicy
	FurniturePrices habitat.Prices
	Drift           economy.Drift
}

// DefaultRules returns the standard game tuning.
func DefaultRules() Rules {
	return Rules{
		StartingMoney:   500,
		StarterCats:     2,
		FoodCost:        1,
		MinBreedingAge:  4,
		Happiness:       habitat.DefaultHappinessPolicy(),
		FurniturePrices: habitat.DefaultPrices(),
	}
}

// Engine applies actions and resolves turns. It holds no mutable state of
// its own: every method is a pure function from (state, inputs) to new
// state, so callers are free to snapshot, diff, and replay.
type Engine struct {
	Rules Rules
}

// NewEngine builds an engine with the given rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{Rules: rules}
}

// NewGame builds a fresh starting state from the seeded stream: founder
// cats first, then the opening market inventory. Draw order is fixed so a
// fresh game is as replayable as any later turn.
func (e *Engine) NewGame(market economy.Market, rnd rng.Source) State {
	s := State{
		Day:    1,
		Money:  e.Rules.StartingMoney,
		Market: market,
	}

	for i := 0; i < e.Rules.StarterCats; i++ {
		name := cats.RandomName(rnd)
		s.Roster = append(s.Roster, cats.RandomCat(name, cats.CatOptions{Rand: rnd}))
	}

	s.Inventory = economy.GenerateInventory(market, e.Rules.Drift.Factor(s.Day), rnd)
	return s
}

// Package economy translates a cat's phenotype, age, and happiness into
// market prices, and generates the rotating market inventory.
package economy

import (
	"math"

	"github.com/markmckenna/catbreeder/internal/cats"
	"github.com/markmckenna/catbreeder/internal/rng"
)

// Fluctuation sigma is chosen so three standard deviations approximate a
// ±10% swing around the configured multiplier.
const fluctuationSigma = 0.1 / 3

// Market holds the static pricing configuration. It is plain data and is
// never mutated at runtime; day-to-day variation comes from fluctuation
// draws and the optional drift factor, not from mutating this table.
type Market struct {
	BasePrice     int     `json:"base_price" yaml:"base_price"`
	BuyPremium    float64 `json:"buy_premium" yaml:"buy_premium"`
	KittenAgeMax  int     `json:"kitten_age_max" yaml:"kitten_age_max"`
	KittenPremium float64 `json:"kitten_premium" yaml:"kitten_premium"`
	InventorySize int     `json:"inventory_size" yaml:"inventory_size"`

	// TraitValues maps trait name to phenotype label to value multiplier.
	TraitValues map[string]map[string]float64 `json:"trait_values" yaml:"trait_values"`

	// Fluctuation policy. The two sides are deliberately independent:
	// live inventory prices fluctuate while owned-cat display valuations
	// stay stable, unless configured otherwise.
	FluctuateInventory bool `json:"fluctuate_inventory" yaml:"fluctuate_inventory"`
	FluctuateOwned     bool `json:"fluctuate_owned" yaml:"fluctuate_owned"`
}

// DefaultMarket returns the standard pricing table.
func DefaultMarket() Market {
	return Market{
		BasePrice:     100,
		BuyPremium:    0.20,
		KittenAgeMax:  4,
		KittenPremium: 1.2,
		InventorySize: 3,
		TraitValues: map[string]map[string]float64{
			"size": {"large": 1.5, "small": 1.0},
			"tail": {"long": 1.3, "short": 1.0},
			"ears": {"pointed": 1.4, "folded": 1.0},
			"fur":  {"dark": 1.2, "light": 1.0},
		},
		FluctuateInventory: true,
		FluctuateOwned:     false,
	}
}

// TraitMultiplier multiplies the configured value coefficient of each of
// the four traits. When fluctuate is set, each coefficient is perturbed by
// its own normally distributed factor centered at 1.0, one per trait in
// trait order, so replayed pricing is call-for-call identical.
func TraitMultiplier(ph cats.Phenotype, m Market, fluctuate bool, rnd rng.Source) float64 {
	mult := 1.0
	for _, t := range cats.Traits {
		v := 1.0
		if table, ok := m.TraitValues[t.String()]; ok {
			if coeff, ok := table[ph[t]]; ok {
				v = coeff
			}
		}
		if fluctuate {
			v *= rng.Normal(rnd, 1.0, fluctuationSigma)
		}
		mult *= v
	}
	return mult
}

// ValueOptions parameterizes a valuation. Drift defaults to 1.0 (no
// drift); Rand is only consumed when Fluctuate is set.
type ValueOptions struct {
	Fluctuate bool
	Drift     float64
	Rand      rng.Source
}

// Value computes a cat's sale value:
//
//	round(basePrice × drift × traitMultiplier × happiness/100 × kittenPremium)
//
// Zero happiness means zero value; that is a hard design choice, not a
// floor. Rounding happens once, on the final product.
func Value(c cats.Cat, m Market, opts ValueOptions) int {
	drift := opts.Drift
	if drift == 0 {
		drift = 1
	}
	mult := TraitMultiplier(c.Phenotype, m, opts.Fluctuate, opts.Rand)
	happiness := float64(c.Happiness) / 100
	premium := 1.0
	if c.IsKittenAt(m.KittenAgeMax) {
		premium = m.KittenPremium
	}
	return int(math.Round(float64(m.BasePrice) * drift * mult * happiness * premium))
}

// Factor is one contributing line of a value breakdown.
type Factor struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// Breakdown lists the above-parity factors contributing to a cat's value:
// trait multipliers greater than 1, plus the kitten premium when it
// applies. Purely derivative of the same table; never fluctuated.
func Breakdown(c cats.Cat, m Market) []Factor {
	var factors []Factor
	for _, t := range cats.Traits {
		if table, ok := m.TraitValues[t.String()]; ok {
			if coeff, ok := table[c.Phenotype[t]]; ok && coeff > 1 {
				factors = append(factors, Factor{Label: c.Phenotype[t] + " " + t.String(), Multiplier: coeff})
			}
		}
	}
	if c.IsKittenAt(m.KittenAgeMax) {
		factors = append(factors, Factor{Label: "kitten", Multiplier: m.KittenPremium})
	}
	return factors
}

// PurchasePrice is the buy-side price: sale value plus the buy premium,
// rounded once at the end.
func PurchasePrice(c cats.Cat, m Market, opts ValueOptions) int {
	return int(math.Round(float64(Value(c, m, opts)) * (1 + m.BuyPremium)))
}

// Listing pairs a market cat with its computed purchase price.
type Listing struct {
	Cat   cats.Cat `json:"cat"`
	Price int      `json:"price"`
}

// GenerateInventory produces a full market inventory of freshly generated
// cats. The list is always rebuilt from scratch, never patched, so stale
// cat references cannot leak between days. Per listing the draw order is:
// name pick, random cat, then fluctuation draws when the inventory policy
// enables them.
func GenerateInventory(m Market, drift float64, rnd rng.Source) []Listing {
	size := m.InventorySize
	if size <= 0 {
		size = 3
	}
	listings := make([]Listing, 0, size)
	for i := 0; i < size; i++ {
		name := cats.RandomName(rnd)
		c := cats.RandomCat(name, cats.CatOptions{Rand: rnd})
		price := PurchasePrice(c, m, ValueOptions{
			Fluctuate: m.FluctuateInventory,
			Drift:     drift,
			Rand:      rnd,
		})
		listings = append(listings, Listing{Cat: c, Price: price})
	}
	return listings
}

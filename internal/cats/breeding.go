package cats

import (
	"fmt"

	"github.com/markmckenna/catbreeder/internal/rng"
)

// Default ranges for randomly generated cats: young adult to one year old,
// content to perfectly happy.
const (
	randomAgeMin       = 4
	randomAgeMax       = 52
	randomHappinessMin = 70
	randomHappinessMax = 100
)

// BreedPair produces one offspring allele pair for a single trait: one
// allele drawn 50/50 from parent A, then one from parent B. Consumes
// exactly two draws, A before B.
func BreedPair(a, b Pair, rnd rng.Source) Pair {
	fromA := rng.Flip(rnd, a[0], a[1])
	fromB := rng.Flip(rnd, b[0], b[1])
	return Pair{fromA, fromB}
}

// BreedOptions customizes offspring creation. A supplied ID skips the
// stream draw that would otherwise generate one.
type BreedOptions struct {
	ID   string
	Rand rng.Source
}

// Breed combines two parent genotypes into a newborn kitten. Pairs are
// built in trait order (two draws each), then one more draw generates the
// id suffix when none is supplied. Newborns start at age 0 and full
// happiness.
func Breed(parentA, parentB Cat, name string, opts BreedOptions) Cat {
	var g Genotype
	for _, t := range Traits {
		g[t] = BreedPair(parentA.Genotype[t], parentB.Genotype[t], opts.Rand)
	}

	id := opts.ID
	if id == "" {
		id = randomID(opts.Rand)
	}

	return Cat{
		ID:        id,
		Name:      name,
		Genotype:  g,
		Phenotype: PhenotypeOf(g),
		Age:       0,
		Happiness: 100,
	}
}

// RandomGenotype draws a founder genotype: two independent coin flips per
// trait, so all four zygosity outcomes land with equal 25% probability.
func RandomGenotype(rnd rng.Source) Genotype {
	var g Genotype
	for _, t := range Traits {
		first := rng.Flip(rnd, t.Dominant(), t.Recessive())
		second := rng.Flip(rnd, t.Dominant(), t.Recessive())
		g[t] = Pair{first, second}
	}
	return g
}

// CatOptions customizes random cat generation. Age and Happiness are
// pointers so that explicit zero overrides are possible for test fixtures.
type CatOptions struct {
	ID        string
	Age       *int
	Happiness *int
	Rand      rng.Source
}

// RandomCat generates a founder or market cat. Draw order is fixed:
// genotype (eight draws), id (one, unless supplied), age (one, unless
// overridden), happiness (one, unless overridden).
func RandomCat(name string, opts CatOptions) Cat {
	g := RandomGenotype(opts.Rand)

	id := opts.ID
	if id == "" {
		id = randomID(opts.Rand)
	}

	age := 0
	if opts.Age != nil {
		age = *opts.Age
	} else {
		age = rng.IntBetween(opts.Rand, randomAgeMin, randomAgeMax)
	}

	happiness := 0
	if opts.Happiness != nil {
		happiness = *opts.Happiness
	} else {
		happiness = rng.IntBetween(opts.Rand, randomHappinessMin, randomHappinessMax)
	}

	return Cat{
		ID:        id,
		Name:      name,
		Genotype:  g,
		Phenotype: PhenotypeOf(g),
		Age:       age,
		Happiness: happiness,
	}
}

func randomID(rnd rng.Source) string {
	return fmt.Sprintf("cat-%06d", rng.IntBetween(rnd, 0, 999999))
}

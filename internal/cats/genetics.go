// Package cats provides the cat data model and the Mendelian genetics
// behind breeding: four biallelic traits, independent assortment, simple
// dominance.
package cats

import "strings"

// Trait indexes the four heritable traits. The order here is load-bearing:
// breeding, valuation fluctuation, and random generation all consume
// randomness per trait in this order, so replays stay call-for-call
// identical.
type Trait int

const (
	TraitSize Trait = iota
	TraitTail
	TraitEars
	TraitFur

	NumTraits = 4
)

// Traits lists every trait in canonical order.
var Traits = [NumTraits]Trait{TraitSize, TraitTail, TraitEars, TraitFur}

// Allele is one symbolic trait value: upper-case dominant, lower-case
// recessive.
type Allele byte

// Pair holds the two alleles a cat carries for one trait. Order does not
// affect phenotype but is preserved as produced, for inspection.
type Pair [2]Allele

// Genotype holds one allele pair per trait, indexed by Trait.
type Genotype [NumTraits]Pair

// Phenotype holds the observable label per trait, indexed by Trait.
type Phenotype [NumTraits]string

type traitInfo struct {
	name      string
	dominant  Allele
	recessive Allele
	domLabel  string
	recLabel  string
}

var traitTable = [NumTraits]traitInfo{
	{name: "size", dominant: 'S', recessive: 's', domLabel: "large", recLabel: "small"},
	{name: "tail", dominant: 'T', recessive: 't', domLabel: "long", recLabel: "short"},
	{name: "ears", dominant: 'E', recessive: 'e', domLabel: "pointed", recLabel: "folded"},
	{name: "fur", dominant: 'F', recessive: 'f', domLabel: "dark", recLabel: "light"},
}

func (t Trait) String() string { return traitTable[t].name }

// Dominant returns the dominant allele symbol for the trait.
func (t Trait) Dominant() Allele { return traitTable[t].dominant }

// Recessive returns the recessive allele symbol for the trait.
func (t Trait) Recessive() Allele { return traitTable[t].recessive }

func (p Pair) String() string { return string([]byte{byte(p[0]), byte(p[1])}) }

// Heterozygous reports whether the pair carries two different alleles.
func (p Pair) Heterozygous() bool { return p[0] != p[1] }

// TraitPhenotype returns the observable label for one trait: the dominant
// label if either allele is dominant, otherwise the recessive label.
func TraitPhenotype(t Trait, p Pair) string {
	info := traitTable[t]
	if p[0] == info.dominant || p[1] == info.dominant {
		return info.domLabel
	}
	return info.recLabel
}

// PhenotypeOf derives the full phenotype from a genotype. Traits are
// independent; no cross-trait interaction exists.
func PhenotypeOf(g Genotype) Phenotype {
	var ph Phenotype
	for _, t := range Traits {
		ph[t] = TraitPhenotype(t, g[t])
	}
	return ph
}

// Key returns the canonical collection key for a phenotype: the four
// labels joined in trait order.
func (ph Phenotype) Key() string {
	return strings.Join(ph[:], "|")
}

// Describe returns a human-readable phenotype summary, e.g.
// "large, long tail, pointed ears, dark fur".
func (ph Phenotype) Describe() string {
	return ph[TraitSize] + ", " + ph[TraitTail] + " tail, " + ph[TraitEars] + " ears, " + ph[TraitFur] + " fur"
}

// Homozygous returns a pair carrying the same allele twice.
func Homozygous(a Allele) Pair { return Pair{a, a} }

package cats

// Cat is the core entity of the simulation. Phenotype is always derivable
// from Genotype; the stored copy exists for display and serialization and
// is recomputed whenever the genotype is produced.
type Cat struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Genotype  Genotype  `json:"genotype"`
	Phenotype Phenotype `json:"phenotype"`
	Age       int       `json:"age"`       // Weeks since birth
	Happiness int       `json:"happiness"` // Clamped to [0, 100]
	Favourite bool      `json:"favourite,omitempty"`
}

// IsKittenAt reports whether the cat is below the given juvenile age
// threshold.
func (c Cat) IsKittenAt(maxAge int) bool {
	return c.Age < maxAge
}

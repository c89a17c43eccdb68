package habitat

// HappinessPolicy is the flat additive per-spot-type formula. Penalties
// are stored as negative numbers and added, so the configuration reads
// the same way the arithmetic runs.
type HappinessPolicy struct {
	BaseDecay    int `json:"base_decay" yaml:"base_decay"`
	ToyBonus     int `json:"toy_bonus" yaml:"toy_bonus"`
	BedBonus     int `json:"bed_bonus" yaml:"bed_bonus"`
	FloorPenalty int `json:"floor_penalty" yaml:"floor_penalty"`
	AlonePenalty int `json:"alone_penalty" yaml:"alone_penalty"`
	CrowdPenalty int `json:"crowd_penalty" yaml:"crowd_penalty"`
}

// DefaultHappinessPolicy returns the standard tuning.
func DefaultHappinessPolicy() HappinessPolicy {
	return HappinessPolicy{
		BaseDecay:    -5,
		ToyBonus:     3,
		BedBonus:     6,
		FloorPenalty: -3,
		AlonePenalty: -5,
		CrowdPenalty: -1,
	}
}

// Delta computes one cat's happiness change for a turn. The overcrowding
// penalty applies uniformly to every cat, not just the excess ones.
func (p HappinessPolicy) Delta(spot SpotType, rosterSize, capacity int) int {
	d := p.BaseDecay
	switch spot {
	case SpotToy:
		d += p.ToyBonus
	case SpotBed:
		d += p.BedBonus
	case SpotFloor:
		d += p.FloorPenalty
	}
	if rosterSize == 1 {
		d += p.AlonePenalty
	}
	if over := rosterSize - capacity; over > 0 {
		d += p.CrowdPenalty * over
	}
	return d
}

// ClampHappiness bounds a happiness value to [0, 100].
func ClampHappiness(h int) int {
	if h < 0 {
		return 0
	}
	if h > 100 {
		return 100
	}
	return h
}

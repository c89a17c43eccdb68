package economy

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Drift produces a smooth per-day base-price modifier from seeded simplex
// noise. It is a pure function of (seed, day) and consumes nothing from
// the turn's random stream, so enabling it does not shift any other
// derived calculation. Amplitude 0 disables drift entirely.
type Drift struct {
	noise     opensimplex.Noise
	amplitude float64
	scale     float64
}

// NewDrift builds a drift source. Amplitude is the maximum fractional
// swing (0.1 means ±10%); scale stretches days across the noise field.
func NewDrift(seed int64, amplitude, scale float64) Drift {
	if scale == 0 {
		scale = 0.05
	}
	return Drift{
		noise:     opensimplex.NewNormalized(seed),
		amplitude: amplitude,
		scale:     scale,
	}
}

// Factor returns the base-price multiplier for a day, centered on 1.0.
func (d Drift) Factor(day int) float64 {
	if d.amplitude <= 0 || d.noise == nil {
		return 1
	}
	v := d.noise.Eval2(float64(day)*d.scale, 0)
	return 1 + d.amplitude*(2*v-1)
}

package game

import "github.com/markmckenna/catbreeder/internal/cats"

// BreedingCandidates lists roster cats not queued in any pending pair,
// optionally filtered by a minimum breeding age (0 disables the filter).
func BreedingCandidates(s State, minAge int) []cats.Cat {
	var out []cats.Cat
	for _, c := range s.Roster {
		if s.InPendingPair(c.ID) {
			continue
		}
		if minAge > 0 && c.Age < minAge {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SaleCandidates lists roster cats not pending sale. Favourites are
// excluded; they can never be listed.
func SaleCandidates(s State) []cats.Cat {
	var out []cats.Cat
	for _, c := range s.Roster {
		if c.Favourite || s.PendingSale(c.ID) {
			continue
		}
		out = append(out, c)
	}
	return out
}

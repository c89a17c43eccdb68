// Package habitat converts furniture ownership into housing capacity and
// per-cat room placement, which in turn drives the happiness policy.
package habitat

import (
	"github.com/markmckenna/catbreeder/internal/rng"
)

// Capacity constants: every room houses a couple of cats for free, each
// toy or bed adds one, and a cat tree adds three.
const (
	BaseCapacity    = 2
	CatTreeCapacity = 3
)

// Furniture counts each purchasable item type.
type Furniture struct {
	Toys     int `json:"toys" yaml:"toys"`
	Beds     int `json:"beds" yaml:"beds"`
	CatTrees int `json:"cat_trees" yaml:"cat_trees"`
}

// Capacity returns total housing capacity. Purely additive, no
// diminishing returns.
func Capacity(f Furniture) int {
	return BaseCapacity + f.Toys + f.Beds + CatTreeCapacity*f.CatTrees
}

// SpotType categorizes where a cat ended up in the room.
type SpotType string

const (
	SpotToy     SpotType = "toy"
	SpotBed     SpotType = "bed"
	SpotCatTree SpotType = "cat-tree"
	SpotFixture SpotType = "fixture"
	SpotFloor   SpotType = "floor"
)

// Spot is one cat's assigned position. Coordinates are normalized room
// fractions in [0, 1]; the jitter applied to them is cosmetic but still
// consumes the shared random stream so replays place cats identically.
type Spot struct {
	CatID string   `json:"cat_id"`
	Type  SpotType `json:"type"`
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
}

// Jitter bounds: ±1.5% horizontally, ±1% vertically.
const (
	jitterX = 0.015
	jitterY = 0.01
)

type anchor struct {
	spot SpotType
	x, y float64
}

// Owned-furniture anchors cycle through these coordinates when more than
// one of an item is owned.
var (
	toyAnchors = []anchor{
		{SpotToy, 0.30, 0.70},
		{SpotToy, 0.55, 0.75},
		{SpotToy, 0.20, 0.55},
	}
	bedAnchors = []anchor{
		{SpotBed, 0.75, 0.40},
		{SpotBed, 0.85, 0.60},
	}
	treeAnchors = []anchor{
		{SpotCatTree, 0.10, 0.25},
		{SpotCatTree, 0.90, 0.20},
	}
	fixtureAnchors = []anchor{
		{SpotFixture, 0.50, 0.15}, // windowsill
		{SpotFixture, 0.65, 0.55}, // sofa arm
		{SpotFixture, 0.40, 0.45}, // rug
	}
	floorAnchors = []anchor{
		{SpotFloor, 0.25, 0.85},
		{SpotFloor, 0.50, 0.90},
		{SpotFloor, 0.70, 0.85},
		{SpotFloor, 0.35, 0.65},
	}
)

// AssignSpots places every cat in the room. Furniture-backed spots come
// first (toys, then beds, then cat trees, up to the counts owned), then
// the fixed room elements, then floor positions cycling when cats
// outnumber spots. Two jitter draws per cat, x before y.
func AssignSpots(catIDs []string, f Furniture, rnd rng.Source) []Spot {
	var anchors []anchor
	for i := 0; i < f.Toys; i++ {
		anchors = append(anchors, toyAnchors[i%len(toyAnchors)])
	}
	for i := 0; i < f.Beds; i++ {
		anchors = append(anchors, bedAnchors[i%len(bedAnchors)])
	}
	for i := 0; i < f.CatTrees; i++ {
		anchors = append(anchors, treeAnchors[i%len(treeAnchors)])
	}
	anchors = append(anchors, fixtureAnchors...)

	spots := make([]Spot, 0, len(catIDs))
	for i, id := range catIDs {
		var a anchor
		if i < len(anchors) {
			a = anchors[i]
		} else {
			a = floorAnchors[(i-len(anchors))%len(floorAnchors)]
		}
		dx := jitter(rnd, jitterX)
		dy := jitter(rnd, jitterY)
		spots = append(spots, Spot{
			CatID: id,
			Type:  a.spot,
			X:     a.x + dx,
			Y:     a.y + dy,
		})
	}
	return spots
}

// jitter draws one bounded offset in [-bound, bound) from the shared
// stream.
func jitter(rnd rng.Source, bound float64) float64 {
	if rnd == nil {
		rnd = rng.System()
	}
	return (rnd()*2 - 1) * bound
}

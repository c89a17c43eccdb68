package cats

import "github.com/markmckenna/catbreeder/internal/rng"

// namePool feeds deterministic name selection for founders, market cats,
// and newborns. Picking consumes one draw from the shared source.
var namePool = []string{
	"Biscuit", "Clover", "Maple", "Pepper", "Mochi", "Pickle", "Waffle",
	"Juniper", "Tofu", "Noodle", "Pumpkin", "Sesame", "Olive", "Pretzel",
	"Miso", "Hazel", "Cocoa", "Ginger", "Sage", "Truffle", "Poppy",
	"Marble", "Dumpling", "Chestnut", "Willow", "Basil", "Nutmeg",
	"Crumpet", "Sprout", "Bramble", "Tansy", "Fennel", "Cricket",
	"Pudding", "Saffron", "Barley", "Thistle", "Parsnip", "Wasabi",
	"Clementine",
}

// RandomName picks a cat name uniformly from the pool.
func RandomName(rnd rng.Source) string {
	return rng.Pick(rnd, namePool)
}

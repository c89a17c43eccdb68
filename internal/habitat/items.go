package habitat

// Item identifies a purchasable furniture type.
type Item string

const (
	ItemToy     Item = "toy"
	ItemBed     Item = "bed"
	ItemCatTree Item = "cat-tree"
)

// Prices holds the shop price of each furniture item.
type Prices struct {
	Toy     int `json:"toy" yaml:"toy"`
	Bed     int `json:"bed" yaml:"bed"`
	CatTree int `json:"cat_tree" yaml:"cat_tree"`
}

// DefaultPrices returns the standard shop prices.
func DefaultPrices() Prices {
	return Prices{Toy: 50, Bed: 100, CatTree: 250}
}

// Of returns the price of an item; ok is false for unknown items.
func (p Prices) Of(item Item) (int, bool) {
	switch item {
	case ItemToy:
		return p.Toy, true
	case ItemBed:
		return p.Bed, true
	case ItemCatTree:
		return p.CatTree, true
	}
	return 0, false
}

// Count returns how many of an item the furniture set contains.
func (f Furniture) Count(item Item) int {
	switch item {
	case ItemToy:
		return f.Toys
	case ItemBed:
		return f.Beds
	case ItemCatTree:
		return f.CatTrees
	}
	return 0
}

// Add returns the furniture set with one more of the given item.
func (f Furniture) Add(item Item) Furniture {
	switch item {
	case ItemToy:
		f.Toys++
	case ItemBed:
		f.Beds++
	case ItemCatTree:
		f.CatTrees++
	}
	return f
}

// Remove returns the furniture set with one fewer of the given item,
// never going below zero.
func (f Furniture) Remove(item Item) Furniture {
	switch item {
	case ItemToy:
		if f.Toys > 0 {
			f.Toys--
		}
	case ItemBed:
		if f.Beds > 0 {
			f.Beds--
		}
	case ItemCatTree:
		if f.CatTrees > 0 {
			f.CatTrees--
		}
	}
	return f
}

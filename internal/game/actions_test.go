package game

import (
	"reflect"
	"testing"

	"github.com/markmckenna/catbreeder/internal/cats"
	"github.com/markmckenna/catbreeder/internal/economy"
	"github.com/markmckenna/catbreeder/internal/habitat"
)

func testCat(id string) cats.Cat {
	g := cats.Genotype{
		cats.Homozygous('S'),
		cats.Homozygous('t'),
		cats.Homozygous('E'),
		cats.Homozygous('f'),
	}
	return cats.Cat{
		ID:        id,
		Name:      "cat " + id,
		Genotype:  g,
		Phenotype: cats.PhenotypeOf(g),
		Age:       10,
		Happiness: 80,
	}
}

func testState() State {
	return State{
		Day:    1,
		Money:  500,
		Roster: []cats.Cat{testCat("a"), testCat("b"), testCat("c")},
		Market: economy.DefaultMarket(),
	}
}

func testEngine() *Engine {
	return NewEngine(DefaultRules())
}

func TestAddBreedingPair(t *testing.T) {
	e := testEngine()
	s := testState()

	s2 := e.Apply(s, AddBreedingPair{A: "a", B: "b"})
	if len(s2.PendingPairs) != 1 {
		t.Fatalf("pending pairs = %d, want 1", len(s2.PendingPairs))
	}
	if len(s.PendingPairs) != 0 {
		t.Error("original state mutated")
	}

	// Re-queuing a committed cat is rejected, in either slot.
	s3 := e.Apply(s2, AddBreedingPair{A: "a", B: "c"})
	if len(s3.PendingPairs) != 1 {
		t.Errorf("duplicate member accepted, pairs = %d", len(s3.PendingPairs))
	}
	s3 = e.Apply(s2, AddBreedingPair{A: "c", B: "b"})
	if len(s3.PendingPairs) != 1 {
		t.Errorf("duplicate member accepted in second slot, pairs = %d", len(s3.PendingPairs))
	}

	// Unknown ids are rejected.
	s4 := e.Apply(s, AddBreedingPair{A: "a", B: "nope"})
	if len(s4.PendingPairs) != 0 {
		t.Error("pair with unknown cat accepted")
	}
}

func TestRemoveBreedingPair(t *testing.T) {
	e := testEngine()
	s := e.Apply(testState(), AddBreedingPair{A: "a", B: "b"})

	s2 := e.Apply(s, RemoveBreedingPair{A: "a", B: "b"})
	if len(s2.PendingPairs) != 0 {
		t.Errorf("pairs = %d after removal, want 0", len(s2.PendingPairs))
	}
	// Absent pair is a no-op.
	s3 := e.Apply(s, RemoveBreedingPair{A: "b", B: "a"})
	if len(s3.PendingPairs) != 1 {
		t.Errorf("reversed pair removal should not match, pairs = %d", len(s3.PendingPairs))
	}
}

func TestListForSale(t *testing.T) {
	e := testEngine()
	s := testState()

	s2 := e.Apply(s, ListForSale{ID: "a"})
	if !s2.PendingSale("a") {
		t.Fatal("cat not listed")
	}
	// Double listing stays single.
	s3 := e.Apply(s2, ListForSale{ID: "a"})
	if len(s3.PendingSales) != 1 {
		t.Errorf("double listing produced %d entries", len(s3.PendingSales))
	}
	// Favourites cannot be listed.
	fav := e.Apply(s, ToggleFavourite{ID: "b"})
	if got := e.Apply(fav, ListForSale{ID: "b"}); len(got.PendingSales) != 0 {
		t.Error("favourite was listed for sale")
	}

	s4 := e.Apply(s2, UnlistFromSale{ID: "a"})
	if s4.PendingSale("a") {
		t.Error("cat still listed after unlist")
	}
}

func TestBuyCat(t *testing.T) {
	e := testEngine()
	s := testState()
	newcomer := testCat("m1")
	s.Inventory = []economy.Listing{{Cat: newcomer, Price: 200}}

	s2 := e.Apply(s, BuyCat{Cat: newcomer, Price: 200})
	if s2.Money != 300 {
		t.Errorf("money = %d, want 300", s2.Money)
	}
	if _, ok := s2.FindCat("m1"); !ok {
		t.Error("bought cat not in roster")
	}
	if len(s2.Inventory) != 0 {
		t.Error("bought cat still listed in inventory")
	}
	if len(s2.Transactions) != 1 || s2.Transactions[0].Kind != "buy" || s2.Transactions[0].Amount != 200 {
		t.Errorf("transaction = %+v", s2.Transactions)
	}

	// Insufficient funds.
	s.Money = 100
	s3 := e.Apply(s, BuyCat{Cat: newcomer, Price: 200})
	if s3.Money != 100 || len(s3.Roster) != 3 {
		t.Error("purchase went through without funds")
	}
}

func TestBuyAndSellFurniture(t *testing.T) {
	e := testEngine()
	s := testState()

	s2 := e.Apply(s, BuyFurniture{Item: habitat.ItemBed})
	if s2.Money != 400 || s2.Furniture.Beds != 1 {
		t.Errorf("after buy: money=%d furniture=%+v", s2.Money, s2.Furniture)
	}

	s3 := e.Apply(s2, SellFurniture{Item: habitat.ItemBed})
	if s3.Money != 450 || s3.Furniture.Beds != 0 {
		t.Errorf("after sell: money=%d furniture=%+v", s3.Money, s3.Furniture)
	}

	// Selling what you do not own is rejected.
	s4 := e.Apply(s, SellFurniture{Item: habitat.ItemCatTree})
	if !reflect.DeepEqual(s4, s) {
		t.Error("selling unowned furniture changed state")
	}

	// Unaffordable purchase is rejected.
	s.Money = 10
	s5 := e.Apply(s, BuyFurniture{Item: habitat.ItemCatTree})
	if s5.Money != 10 || s5.Furniture.CatTrees != 0 {
		t.Error("unaffordable purchase went through")
	}
}

func TestToggleFavourite(t *testing.T) {
	e := testEngine()
	s := testState()

	s2 := e.Apply(s, ToggleFavourite{ID: "a"})
	c, _ := s2.FindCat("a")
	if !c.Favourite {
		t.Error("favourite not set")
	}
	orig, _ := s.FindCat("a")
	if orig.Favourite {
		t.Error("original roster entry mutated")
	}

	s3 := e.Apply(s2, ToggleFavourite{ID: "a"})
	c, _ = s3.FindCat("a")
	if c.Favourite {
		t.Error("favourite not cleared on second toggle")
	}

	s4 := e.Apply(s, ToggleFavourite{ID: "nope"})
	if !reflect.DeepEqual(s4, s) {
		t.Error("toggling unknown cat changed state")
	}
}

func TestQueries(t *testing.T) {
	e := testEngine()
	s := testState()
	s.Roster[2].Age = 2 // too young to breed

	cands := BreedingCandidates(s, e.Rules.MinBreedingAge)
	if len(cands) != 2 {
		t.Fatalf("breeding candidates = %d, want 2", len(cands))
	}
	s2 := e.Apply(s, AddBreedingPair{A: "a", B: "b"})
	if got := BreedingCandidates(s2, e.Rules.MinBreedingAge); len(got) != 0 {
		t.Errorf("queued cats still candidates: %d", len(got))
	}
	if got := BreedingCandidates(s, 0); len(got) != 3 {
		t.Errorf("minAge 0 should disable the age filter, got %d", len(got))
	}

	s3 := e.Apply(s, ToggleFavourite{ID: "a"})
	s3 = e.Apply(s3, ListForSale{ID: "b"})
	if got := SaleCandidates(s3); len(got) != 1 || got[0].ID != "c" {
		t.Errorf("sale candidates = %+v, want only c", got)
	}
}

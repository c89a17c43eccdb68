package game

import (
	"reflect"
	"testing"

	"github.com/markmckenna/catbreeder/internal/cats"
	"github.com/markmckenna/catbreeder/internal/rng"
)

func TestProcessTurnBreeding(t *testing.T) {
	e := testEngine()
	s := testState()
	s = e.Apply(s, AddBreedingPair{A: "a", B: "b"})

	s2, report := e.ProcessTurn(s, rng.New(42))

	if len(s2.Roster) != 4 {
		t.Fatalf("roster = %d, want 4", len(s2.Roster))
	}
	if s2.TotalBred != 1 {
		t.Errorf("total bred = %d, want 1", s2.TotalBred)
	}
	if len(report.Newborns) != 1 {
		t.Fatalf("report newborns = %d, want 1", len(report.Newborns))
	}
	if report.Newborns[0].Age != 0 {
		t.Errorf("reported newborn age = %d, want 0", report.Newborns[0].Age)
	}

	// Everyone ages, the newborn included.
	for _, before := range s.Roster {
		after, ok := s2.FindCat(before.ID)
		if !ok {
			t.Fatalf("cat %s vanished", before.ID)
		}
		if after.Age != before.Age+1 {
			t.Errorf("cat %s age = %d, want %d", before.ID, after.Age, before.Age+1)
		}
	}
	kitten, ok := s2.FindCat(report.Newborns[0].ID)
	if !ok {
		t.Fatal("newborn not in roster")
	}
	if kitten.Age != 1 {
		t.Errorf("newborn age after turn = %d, want 1", kitten.Age)
	}

	if s2.PendingPairs != nil || s2.PendingSales != nil {
		t.Error("pending queues carried over")
	}
	if s2.Day != s.Day+1 {
		t.Errorf("day = %d, want %d", s2.Day, s.Day+1)
	}
	if len(s2.Inventory) != s.Market.InventorySize {
		t.Errorf("inventory = %d, want %d", len(s2.Inventory), s.Market.InventorySize)
	}

	// Input state untouched.
	if len(s.Roster) != 3 || s.TotalBred != 0 {
		t.Error("input state mutated")
	}
}

func TestProcessTurnDiscovery(t *testing.T) {
	e := testEngine()
	s := testState()
	// Both parents homozygous for every trait, so the kitten phenotype
	// is fully determined.
	g := cats.Genotype{
		cats.Homozygous('S'), cats.Homozygous('T'), cats.Homozygous('E'), cats.Homozygous('F'),
	}
	for i := range s.Roster {
		s.Roster[i].Genotype = g
		s.Roster[i].Phenotype = cats.PhenotypeOf(g)
	}
	s = e.Apply(s, AddBreedingPair{A: "a", B: "b"})

	s2, report := e.ProcessTurn(s, rng.New(7))
	if len(s2.Collection) != 1 {
		t.Fatalf("collection = %d entries, want 1", len(s2.Collection))
	}
	d := s2.Collection[0]
	if d.Key != "large|long|pointed|dark" || d.Day != 1 {
		t.Errorf("discovery = %+v", d)
	}
	if len(report.Discoveries) != 1 {
		t.Errorf("report discoveries = %v", report.Discoveries)
	}

	// A second identical litter discovers nothing new and keeps the
	// first cat's name on the entry.
	s3 := e.Apply(s2, AddBreedingPair{A: "a", B: "b"})
	s4, report2 := e.ProcessTurn(s3, rng.New(8))
	if len(s4.Collection) != 1 {
		t.Errorf("collection grew to %d on rediscovery", len(s4.Collection))
	}
	if s4.Collection[0].CatName != d.CatName {
		t.Error("discovery entry overwritten")
	}
	if len(report2.Discoveries) != 0 {
		t.Errorf("rediscovery reported: %v", report2.Discoveries)
	}
}

func TestProcessTurnSale(t *testing.T) {
	e := testEngine()
	s := testState()
	s = e.Apply(s, ListForSale{ID: "b"})

	s2, report := e.ProcessTurn(s, rng.New(42))

	if len(report.Sales) != 1 || report.Sales[0].Cat.ID != "b" {
		t.Fatalf("report sales = %+v", report.Sales)
	}
	if _, ok := s2.FindCat("b"); ok {
		t.Error("sold cat still in roster")
	}
	if s2.TotalSold != 1 {
		t.Errorf("total sold = %d, want 1", s2.TotalSold)
	}
	price := report.Sales[0].Price
	if price <= 0 {
		t.Fatalf("sale price = %d", price)
	}
	wantMoney := s.Money + price - report.FoodCost
	if s2.Money != wantMoney {
		t.Errorf("money = %d, want %d", s2.Money, wantMoney)
	}

	found := false
	for _, tx := range s2.Transactions {
		if tx.Kind == "sell" && tx.Subject == "b" && tx.Amount == price {
			found = true
		}
	}
	if !found {
		t.Errorf("sale transaction missing: %+v", s2.Transactions)
	}
}

func TestProcessTurnFoodCostAndHappiness(t *testing.T) {
	e := testEngine()
	s := testState()

	s2, report := e.ProcessTurn(s, rng.New(3))
	if report.FoodCost != e.Rules.FoodCost*len(s2.Roster) {
		t.Errorf("food cost = %d, want %d", report.FoodCost, e.Rules.FoodCost*len(s2.Roster))
	}
	if s2.Money != s.Money-report.FoodCost {
		t.Errorf("money = %d, want %d", s2.Money, s.Money-report.FoodCost)
	}
	for _, c := range s2.Roster {
		if c.Happiness < 0 || c.Happiness > 100 {
			t.Errorf("cat %s happiness %d out of bounds", c.ID, c.Happiness)
		}
		before, _ := s.FindCat(c.ID)
		if c.Happiness == before.Happiness {
			t.Errorf("cat %s happiness unchanged", c.ID)
		}
	}
}

func TestProcessTurnStaleReferences(t *testing.T) {
	e := testEngine()
	s := testState()
	s.PendingPairs = []BreedingPair{{A: "a", B: "gone"}}
	s.PendingSales = []string{"also-gone"}

	s2, report := e.ProcessTurn(s, rng.New(5))
	if len(report.Newborns) != 0 || len(report.Sales) != 0 {
		t.Errorf("stale references resolved: %+v", report)
	}
	if len(s2.Roster) != 3 || s2.TotalBred != 0 || s2.TotalSold != 0 {
		t.Error("stale references changed totals")
	}
}

func TestProcessTurnReplayIdentical(t *testing.T) {
	e := testEngine()
	build := func() (State, Report) {
		s := e.NewGame(testState().Market, rng.New(1234))
		s = e.Apply(s, AddBreedingPair{A: s.Roster[0].ID, B: s.Roster[1].ID})
		s, _ = e.ProcessTurn(s, rng.New(99))
		s = e.Apply(s, ListForSale{ID: s.Roster[0].ID})
		return e.ProcessTurn(s, rng.New(100))
	}
	s1, r1 := build()
	s2, r2 := build()
	if !reflect.DeepEqual(s1, s2) {
		t.Error("replayed states differ")
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Error("replayed reports differ")
	}
}

func TestNewGame(t *testing.T) {
	e := testEngine()
	m := testState().Market
	s := e.NewGame(m, rng.New(42))

	if s.Day != 1 {
		t.Errorf("day = %d, want 1", s.Day)
	}
	if s.Money != e.Rules.StartingMoney {
		t.Errorf("money = %d, want %d", s.Money, e.Rules.StartingMoney)
	}
	if len(s.Roster) != e.Rules.StarterCats {
		t.Errorf("starters = %d, want %d", len(s.Roster), e.Rules.StarterCats)
	}
	if len(s.Inventory) != m.InventorySize {
		t.Errorf("inventory = %d, want %d", len(s.Inventory), m.InventorySize)
	}
	for _, c := range s.Roster {
		if c.ID == "" || c.Name == "" {
			t.Errorf("starter missing identity: %+v", c)
		}
	}

	again := e.NewGame(m, rng.New(42))
	if !reflect.DeepEqual(s, again) {
		t.Error("same seed produced different starting states")
	}
}

func TestBuildEvents(t *testing.T) {
	r := Report{
		Newborns: []cats.Cat{{Name: "Mochi"}},
		Sales:    []Sale{{Price: 1500}},
		FoodCost: 4,
	}
	events := buildEvents(r)
	want := []string{
		"Mochi was born",
		"sold 1 cat(s) for 1,500 coins",
		"spent 4 coins on food",
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %q, want %q", events, want)
	}
}

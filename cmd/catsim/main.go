// Command catsim runs the cat-breeding simulation: an interactive REPL by
// default, or a headless scripted run with -turns.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/markmckenna/catbreeder/internal/config"
	"github.com/markmckenna/catbreeder/internal/economy"
	"github.com/markmckenna/catbreeder/internal/game"
	"github.com/markmckenna/catbreeder/internal/habitat"
	"github.com/markmckenna/catbreeder/internal/ledger"
	"github.com/markmckenna/catbreeder/internal/persistence"
	"github.com/markmckenna/catbreeder/internal/rng"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		seed       = flag.Int64("seed", 42, "simulation seed")
		dbPath     = flag.String("db", "data/catbreeder.db", "sqlite save path")
		configPath = flag.String("config", "", "optional YAML config overriding defaults")
		outDir     = flag.String("out", "", "CSV output directory (empty disables)")
		turns      = flag.Int("turns", 0, "run N turns headlessly instead of the REPL")
		fresh      = flag.Bool("fresh", false, "ignore saved state and start a new game")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll("data", 0755); err != nil {
		slog.Error("failed to create data dir", "error", err)
		os.Exit(1)
	}
	store, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	out, err := ledger.NewManager(*outDir)
	if err != nil {
		slog.Error("failed to open output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	// The effective seed must be known before any seed-derived machinery
	// exists: a restored game plays on its snapshot's seed, and the drift
	// source inside the rules is a pure function of that seed.
	state, gameSeed, err := restoreState(store, *seed, *fresh)
	if err != nil {
		slog.Error("failed to read save", "error", err)
		os.Exit(1)
	}

	// One stream drives the whole run. Replaying the same seed plus the
	// same ordered commands reproduces the run bit-for-bit.
	rnd := rng.New(gameSeed)
	engine := game.NewEngine(cfg.Rules(gameSeed))

	if state.Day == 0 {
		state = engine.NewGame(cfg.Market(), rnd)
		slog.Info("new game started", "seed", gameSeed, "cats", len(state.Roster), "money", state.Money)
	}

	if *turns > 0 {
		runHeadless(engine, &state, rnd, *turns, out)
	} else {
		runREPL(engine, &state, rnd, store, out, gameSeed)
	}

	if _, err := store.SaveSnapshot(state, gameSeed); err != nil {
		slog.Error("final save failed", "error", err)
	}
}

// restoreState loads the latest snapshot unless fresh is set. When a
// snapshot is restored, its seed replaces the flag seed; a zero-day
// state means no usable save existed and the caller starts a new game.
func restoreState(store *persistence.Store, flagSeed int64, fresh bool) (game.State, int64, error) {
	if fresh {
		return game.State{}, flagSeed, nil
	}

	snap, err := store.LoadLatest()
	if err != nil {
		return game.State{}, 0, err
	}
	if snap == nil {
		return game.State{}, flagSeed, nil
	}

	slog.Info("game restored",
		"day", snap.State.Day, "cats", len(snap.State.Roster), "money", snap.State.Money, "seed", snap.Seed)
	return snap.State, snap.Seed, nil
}

// runHeadless advances the game by queuing the first two breeding
// candidates each turn, then resolving. Useful for replay demonstrations
// and soak runs.
func runHeadless(engine *game.Engine, state *game.State, rnd rng.Source, turns int, out *ledger.Manager) {
	for i := 0; i < turns; i++ {
		candidates := game.BreedingCandidates(*state, engine.Rules.MinBreedingAge)
		if len(candidates) >= 2 {
			*state = engine.Apply(*state, game.AddBreedingPair{A: candidates[0].ID, B: candidates[1].ID})
		}
		next, report := engine.ProcessTurn(*state, rnd)
		*state = next

		slog.Info("turn resolved",
			"day", report.Day,
			"births", len(report.Newborns),
			"sales", len(report.Sales),
			"food_cost", report.FoodCost,
			"money", state.Money,
			"cats", len(state.Roster),
		)
		if err := out.WriteTurn(report, *state); err != nil {
			slog.Error("csv write failed", "error", err)
		}
	}
	if err := out.ExportTransactions(*state); err != nil {
		slog.Error("transaction export failed", "error", err)
	}
}

func runREPL(engine *game.Engine, state *game.State, rnd rng.Source, store *persistence.Store, out *ledger.Manager, seed int64) {
	fmt.Println("catsim — type 'help' for commands")
	printStatus(*state)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, ok := matchCommand(fields[0])
		if !ok {
			fmt.Println("unknown command — try 'help'")
			continue
		}
		args := fields[1:]
		if len(args) < cmd.minArgs {
			fmt.Println("usage:", cmd.usage)
			continue
		}

		switch cmd.canonical {
		case "help":
			for _, c := range commands {
				fmt.Println(" ", c.usage)
			}
		case "status":
			printStatus(*state)
		case "cats":
			printRoster(*state)
		case "market":
			printMarket(*state)
		case "collection":
			printCollection(*state)
		case "breed":
			applyOrReject(engine, state, game.AddBreedingPair{A: args[0], B: args[1]}, "pair queued")
		case "unbreed":
			applyOrReject(engine, state, game.RemoveBreedingPair{A: args[0], B: args[1]}, "pair removed")
		case "sell":
			applyOrReject(engine, state, game.ListForSale{ID: args[0]}, "listed for sale")
		case "unsell":
			applyOrReject(engine, state, game.UnlistFromSale{ID: args[0]}, "unlisted")
		case "buy":
			buySlot(engine, state, args[0])
		case "furnish":
			applyOrReject(engine, state, game.BuyFurniture{Item: habitatItem(args[0])}, "furniture bought")
		case "favourite":
			applyOrReject(engine, state, game.ToggleFavourite{ID: args[0]}, "favourite toggled")
		case "value":
			printValue(*state, args[0])
		case "next":
			next, report := engine.ProcessTurn(*state, rnd)
			*state = next
			for _, event := range report.Events {
				fmt.Println(" *", event)
			}
			if err := out.WriteTurn(report, *state); err != nil {
				slog.Error("csv write failed", "error", err)
			}
			printStatus(*state)
		case "save":
			if id, err := store.SaveSnapshot(*state, seed); err != nil {
				slog.Error("save failed", "error", err)
			} else {
				fmt.Println("saved", id)
			}
		case "export":
			if err := out.ExportTransactions(*state); err != nil {
				slog.Error("export failed", "error", err)
			} else if out.Dir() != "" {
				fmt.Println("exported to", out.Dir())
			} else {
				fmt.Println("no output directory configured (-out)")
			}
		case "quit":
			return
		}
	}
}

// applyOrReject applies an action and reports whether it changed
// anything. Rejections are policy no-ops, detected by comparing states.
func applyOrReject(engine *game.Engine, state *game.State, action game.Action, okMsg string) {
	next := engine.Apply(*state, action)
	if sameState(*state, next) {
		fmt.Println("nothing happened (check ids, funds, and queues)")
		return
	}
	*state = next
	fmt.Println(okMsg)
}

// sameState is a cheap shallow comparison good enough to detect reducer
// no-ops: every reducer that changes anything touches at least one of
// these fields.
func sameState(a, b game.State) bool {
	return a.Money == b.Money &&
		len(a.Roster) == len(b.Roster) &&
		len(a.PendingPairs) == len(b.PendingPairs) &&
		len(a.PendingSales) == len(b.PendingSales) &&
		a.Furniture == b.Furniture &&
		countFavourites(a) == countFavourites(b)
}

func countFavourites(s game.State) int {
	n := 0
	for _, c := range s.Roster {
		if c.Favourite {
			n++
		}
	}
	return n
}

func buySlot(engine *game.Engine, state *game.State, arg string) {
	slot, err := strconv.Atoi(arg)
	if err != nil || slot < 1 || slot > len(state.Inventory) {
		fmt.Println("usage: buy <market slot 1-" + strconv.Itoa(len(state.Inventory)) + ">")
		return
	}
	listing := state.Inventory[slot-1]
	applyOrReject(engine, state, game.BuyCat{Cat: listing.Cat, Price: listing.Price},
		fmt.Sprintf("bought %s for %s coins", listing.Cat.Name, humanize.Comma(int64(listing.Price))))
}

func habitatItem(arg string) habitat.Item {
	switch strings.ToLower(arg) {
	case "toy":
		return habitat.ItemToy
	case "bed":
		return habitat.ItemBed
	case "cat-tree", "tree", "cattree":
		return habitat.ItemCatTree
	}
	return habitat.Item(arg)
}

func printStatus(s game.State) {
	fmt.Printf("day %d | %s coins | %d cats | bred %d, sold %d | pending: %d pairs, %d sales\n",
		s.Day, humanize.Comma(int64(s.Money)), len(s.Roster), s.TotalBred, s.TotalSold,
		len(s.PendingPairs), len(s.PendingSales))
}

func printRoster(s game.State) {
	for _, c := range s.Roster {
		fav := ""
		if c.Favourite {
			fav = " ★"
		}
		fmt.Printf("  %s  %-12s age %2d  happiness %3d  %s%s\n",
			c.ID, c.Name, c.Age, c.Happiness, c.Phenotype.Describe(), fav)
	}
}

func printMarket(s game.State) {
	for i, l := range s.Inventory {
		fmt.Printf("  [%d] %-12s %s — %s coins\n",
			i+1, l.Cat.Name, l.Cat.Phenotype.Describe(), humanize.Comma(int64(l.Price)))
	}
}

func printCollection(s game.State) {
	fmt.Printf("discovered %d of 16 combinations\n", len(s.Collection))
	for _, d := range s.Collection {
		fmt.Printf("  day %3d  %-12s %s\n", d.Day, d.CatName, d.Key)
	}
}

func printValue(s game.State, id string) {
	c, ok := s.FindCat(id)
	if !ok {
		fmt.Println("no such cat:", id)
		return
	}
	value := economy.Value(c, s.Market, economy.ValueOptions{Fluctuate: s.Market.FluctuateOwned})
	fmt.Printf("%s is worth about %s coins\n", c.Name, humanize.Comma(int64(value)))
	for _, f := range economy.Breakdown(c, s.Market) {
		fmt.Printf("  ×%.2f %s\n", f.Multiplier, f.Label)
	}
}

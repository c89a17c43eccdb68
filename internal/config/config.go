// Package config provides configuration loading and access for the
// simulation. Embedded defaults are merged with an optional user file;
// fields present in the file overwrite defaults, everything else keeps
// its default value.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/markmckenna/catbreeder/internal/economy"
	"github.com/markmckenna/catbreeder/internal/game"
	"github.com/markmckenna/catbreeder/internal/habitat"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation tuning parameters.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Economy EconomyConfig `yaml:"economy"`
	Habitat HabitatConfig `yaml:"habitat"`
}

// GameConfig holds turn-engine tuning.
type GameConfig struct {
	StartingMoney  int `yaml:"starting_money"`
	StarterCats    int `yaml:"starter_cats"`
	FoodCost       int `yaml:"food_cost"`
	MinBreedingAge int `yaml:"min_breeding_age"`
}

// EconomyConfig holds the pricing table and fluctuation/drift policy.
type EconomyConfig struct {
	BasePrice          int                           `yaml:"base_price"`
	BuyPremium         float64                       `yaml:"buy_premium"`
	KittenAgeMax       int                           `yaml:"kitten_age_max"`
	KittenPremium      float64                       `yaml:"kitten_premium"`
	InventorySize      int                           `yaml:"inventory_size"`
	FluctuateInventory bool                          `yaml:"fluctuate_inventory"`
	FluctuateOwned     bool                          `yaml:"fluctuate_owned"`
	DriftAmplitude     float64                       `yaml:"drift_amplitude"`
	DriftScale         float64                       `yaml:"drift_scale"`
	TraitValues        map[string]map[string]float64 `yaml:"trait_values"`
}

// HabitatConfig holds the happiness policy and furniture shop prices.
type HabitatConfig struct {
	Happiness habitat.HappinessPolicy `yaml:"happiness"`
	Prices    habitat.Prices          `yaml:"prices"`
}

// Load reads configuration from a YAML file merged over embedded
// defaults. An empty path uses defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Market builds the economy pricing configuration.
func (c *Config) Market() economy.Market {
	return economy.Market{
		BasePrice:          c.Economy.BasePrice,
		BuyPremium:         c.Economy.BuyPremium,
		KittenAgeMax:       c.Economy.KittenAgeMax,
		KittenPremium:      c.Economy.KittenPremium,
		InventorySize:      c.Economy.InventorySize,
		TraitValues:        c.Economy.TraitValues,
		FluctuateInventory: c.Economy.FluctuateInventory,
		FluctuateOwned:     c.Economy.FluctuateOwned,
	}
}

// Rules builds the turn-engine rules for the given game seed. The drift
// source is seeded here so that base-price drift replays with the game.
func (c *Config) Rules(seed int64) game.Rules {
	return game.Rules{
		StartingMoney:   c.Game.StartingMoney,
		StarterCats:     c.Game.StarterCats,
		FoodCost:        c.Game.FoodCost,
		MinBreedingAge:  c.Game.MinBreedingAge,
		Happiness:       c.Habitat.Happiness,
		FurniturePrices: c.Habitat.Prices,
		Drift:           economy.NewDrift(seed, c.Economy.DriftAmplitude, c.Economy.DriftScale),
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

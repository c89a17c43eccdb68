// Package ledger exports the money ledger and per-turn summaries as CSV
// for offline inspection.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/markmckenna/catbreeder/internal/game"
)

// TurnRow is one turns.csv record.
type TurnRow struct {
	Day        int `csv:"day"`
	Births     int `csv:"births"`
	Sales      int `csv:"sales"`
	Proceeds   int `csv:"proceeds"`
	FoodCost   int `csv:"food_cost"`
	Money      int `csv:"money"`
	RosterSize int `csv:"roster_size"`
}

// Manager appends CSV records to an output directory. A nil Manager is a
// no-op so output can be disabled by simply not creating one.
type Manager struct {
	dir string

	turnsFile         *os.File
	turnHeaderWritten bool
}

// NewManager creates the output directory and opens turns.csv. Returns
// nil if dir is empty (output disabled).
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "turns.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating turns.csv: %w", err)
	}

	return &Manager{dir: dir, turnsFile: f}, nil
}

// WriteTurn appends one turn summary. The header is written once, on the
// first record.
func (m *Manager) WriteTurn(report game.Report, state game.State) error {
	if m == nil {
		return nil
	}

	proceeds := 0
	for _, sale := range report.Sales {
		proceeds += sale.Price
	}
	records := []TurnRow{{
		Day:        report.Day,
		Births:     len(report.Newborns),
		Sales:      len(report.Sales),
		Proceeds:   proceeds,
		FoodCost:   report.FoodCost,
		Money:      state.Money,
		RosterSize: len(state.Roster),
	}}

	if !m.turnHeaderWritten {
		if err := gocsv.Marshal(records, m.turnsFile); err != nil {
			return fmt.Errorf("writing turn: %w", err)
		}
		m.turnHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, m.turnsFile); err != nil {
		return fmt.Errorf("writing turn: %w", err)
	}
	return nil
}

// ExportTransactions writes the full transaction log to
// transactions.csv, replacing any previous export.
func (m *Manager) ExportTransactions(state game.State) error {
	if m == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(m.dir, "transactions.csv"))
	if err != nil {
		return fmt.Errorf("creating transactions.csv: %w", err)
	}
	defer f.Close()

	transactions := state.Transactions
	if transactions == nil {
		transactions = []game.Transaction{}
	}
	if err := gocsv.Marshal(transactions, f); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (m *Manager) Dir() string {
	if m == nil {
		return ""
	}
	return m.dir
}

// Close flushes and closes the open output files.
func (m *Manager) Close() error {
	if m == nil || m.turnsFile == nil {
		return nil
	}
	return m.turnsFile.Close()
}

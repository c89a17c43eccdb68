// Package persistence provides SQLite-based game state snapshots. The
// simulation core never touches storage; it hands over a plain-data
// snapshot and gets one back.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/markmckenna/catbreeder/internal/economy"
	"github.com/markmckenna/catbreeder/internal/game"
)

// FormatVersion is bumped whenever the snapshot shape changes. Older
// versions still load best-effort, with missing fields zeroed or
// defaulted.
const FormatVersion = 2

// Snapshot is one persisted game state plus the seed that drives it.
type Snapshot struct {
	ID      string
	Version int
	Seed    int64
	State   game.State
}

// Store wraps a SQLite connection for snapshot persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	store := &Store{conn: conn}
	if err := store.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		version INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		state TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_saves_created ON saves(created_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// SaveSnapshot writes a new snapshot row and returns its identifier.
func (s *Store) SaveSnapshot(state game.State, seed int64) (string, error) {
	blob, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}

	id := uuid.NewString()
	_, err = s.conn.Exec(
		"INSERT INTO saves (id, created_at, version, seed, state) VALUES (?, ?, ?, ?, ?)",
		id, time.Now().UTC().Format(time.RFC3339Nano), FormatVersion, seed, string(blob),
	)
	if err != nil {
		return "", fmt.Errorf("insert save: %w", err)
	}

	slog.Info("snapshot saved", "id", id, "day", state.Day, "roster", len(state.Roster))
	return id, nil
}

type saveRow struct {
	ID      string `db:"id"`
	Version int    `db:"version"`
	Seed    int64  `db:"seed"`
	State   string `db:"state"`
}

// LoadLatest returns the most recent snapshot, or nil when no usable
// save exists. A corrupt row is a recoverable load-failed outcome, never
// a partially applied state: callers fall back to fresh initialization.
func (s *Store) LoadLatest() (*Snapshot, error) {
	var row saveRow
	err := s.conn.Get(&row,
		"SELECT id, version, seed, state FROM saves ORDER BY created_at DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest save: %w", err)
	}

	var state game.State
	if err := json.Unmarshal([]byte(row.State), &state); err != nil {
		slog.Warn("snapshot unreadable, starting fresh", "id", row.ID, "error", err)
		return nil, nil
	}

	if row.Version != FormatVersion {
		slog.Warn("snapshot format mismatch, loading best-effort",
			"id", row.ID, "got", row.Version, "want", FormatVersion)
	}
	fillDefaults(&state)

	return &Snapshot{
		ID:      row.ID,
		Version: row.Version,
		Seed:    row.Seed,
		State:   state,
	}, nil
}

// fillDefaults zeroes in sensible values for fields absent from older
// snapshot formats. Furniture simply stays at zero counts; the market
// table is restored from defaults when missing.
func fillDefaults(state *game.State) {
	if state.Market.BasePrice == 0 && state.Market.TraitValues == nil {
		state.Market = economy.DefaultMarket()
	}
	if state.Market.InventorySize == 0 {
		state.Market.InventorySize = economy.DefaultMarket().InventorySize
	}
	if state.Day == 0 {
		state.Day = 1
	}
}

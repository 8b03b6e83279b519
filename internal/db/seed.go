package db

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/models"
)

// LoadSeed parses a YAML list of states and their cities.
func LoadSeed(r io.Reader) ([]models.StateSeed, error) {
	var states []models.StateSeed
	if err := yaml.NewDecoder(r).Decode(&states); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	return states, nil
}

// SeedFile loads the seed file at path and upserts its contents.
func SeedFile(ctx context.Context, db *sqlx.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	states, err := LoadSeed(f)
	if err != nil {
		return err
	}
	return Seed(ctx, db, states)
}

// Seed upserts states and cities in a single transaction. Existing rows
// are left untouched.
func Seed(ctx context.Context, db *sqlx.DB, states []models.StateSeed) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	const upsertState = `
		INSERT INTO states (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING state_id
	`
	const upsertCity = `
		INSERT INTO cities (name, state_id) VALUES ($1, $2)
		ON CONFLICT (name, state_id) DO NOTHING
	`

	for _, state := range states {
		var stateID int64
		if err := tx.GetContext(ctx, &stateID, upsertState, state.Name); err != nil {
			return fmt.Errorf("upserting state %q: %w", state.Name, err)
		}
		for _, city := range state.Cities {
			if _, err := tx.ExecContext(ctx, upsertCity, city, stateID); err != nil {
				return fmt.Errorf("upserting city %q of %q: %w", city, state.Name, err)
			}
		}
		logger.Log.Infow("seeded state", "state", state.Name, "cities", len(state.Cities))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}

package database

import (
	"context"
	"database/sql"
)

// SlotRepository persists content slots as one row per slot name, the
// server-side equivalent of the site's original key/value storage layout.
type SlotRepository struct {
	DB *sql.DB
}

func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{DB: db}
}

// EnsureSchema creates the slot table if it is missing. There is exactly
// one table, so a migration tool would be overkill.
func (r *SlotRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS content_slots (
			name       TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := r.DB.ExecContext(ctx, query)
	return err
}

func (r *SlotRepository) Load(ctx context.Context, name string) ([]byte, bool, error) {
	query := `SELECT value FROM content_slots WHERE name = $1`

	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *SlotRepository) Save(ctx context.Context, name string, raw []byte) error {
	query := `
		INSERT INTO content_slots (name, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, name, raw)
	return err
}

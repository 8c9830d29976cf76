package sqlgen

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

const getMenuConfig = `
SELECT config_value FROM menu_config WHERE config_key = $1
`

// GetMenuConfig returns the raw JSON blob for a config key, or nil when absent.
func (q *Queries) GetMenuConfig(ctx context.Context, configKey string) ([]byte, error) {
	var value []byte
	err := q.db.QueryRow(ctx, getMenuConfig, configKey).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

const upsertMenuConfig = `
INSERT INTO menu_config (config_key, config_value)
VALUES ($1, $2)
ON CONFLICT (config_key) DO UPDATE SET
  config_value = EXCLUDED.config_value,
  updated_at = CURRENT_TIMESTAMP
`

func (q *Queries) UpsertMenuConfig(ctx context.Context, configKey string, configValue []byte) error {
	_, err := q.db.Exec(ctx, upsertMenuConfig, configKey, configValue)
	return err
}

const deleteMenuConfig = `
DELETE FROM menu_config WHERE config_key = $1
`

func (q *Queries) DeleteMenuConfig(ctx context.Context, configKey string) error {
	_, err := q.db.Exec(ctx, deleteMenuConfig, configKey)
	return err
}

package database

import (
	"database/sql"
	"fmt"

	"standup-bot/internal/domain/contract"
)

type stateRepo struct {
	db dbConn
}

func newStateRepo(db dbConn) contract.StateRepo {
	return &stateRepo{db: db}
}

func (r *stateRepo) Set(key, value string) error {
	query := `
		INSERT INTO bot_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to upsert bot state %q: %w", key, err)
	}

	return nil
}

func (r *stateRepo) Get(key string) (string, error) {
	var value string
	query := `SELECT value FROM bot_state WHERE key = ?`

	err := r.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get bot state %q: %w", key, err)
	}

	return value, nil
}

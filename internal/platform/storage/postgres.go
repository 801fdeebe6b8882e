package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/syntara-client/internal/platform"
	"github.com/MichalMitros/syntara-client/internal/platform/storage/gen/postgres/public/table"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/syntara-client/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

//go:generate jet -dsn=${DATABASE_URL} -schema=public -path=./gen

// Postgres is key-value storage for client state kept in client_state table.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// Get returns value stored under key.
// It returns platform.ErrKeyNotFound if key is not stored.
func (p Postgres) Get(ctx context.Context, key string) (string, error) {
	var entry pgmodels.ClientState
	err := table.ClientState.SELECT(table.ClientState.AllColumns).
		WHERE(table.ClientState.Key.EQ(pg.String(key))).
		QueryContext(ctx, p.db, &entry)

	if errors.Is(err, qrm.ErrNoRows) {
		return "", platform.ErrKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("can't get %q from database: %w", key, err)
	}

	return entry.Value, nil
}

// Set inserts value under key or replaces existing one.
func (p Postgres) Set(ctx context.Context, key, value string) error {
	_, err := table.ClientState.
		INSERT(table.ClientState.Key, table.ClientState.Value).
		VALUES(key, value).
		ON_CONFLICT(table.ClientState.Key).
		DO_UPDATE(pg.SET(
			table.ClientState.Value.SET(table.ClientState.EXCLUDED.Value),
			table.ClientState.UpdatedAt.SET(pg.NOW()),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't upsert %q: %w", key, err)
	}

	return nil
}

// Delete removes provided keys. Missing keys are ignored.
func (p Postgres) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	keyExpressions := lo.Map(keys, func(key string, _ int) pg.Expression {
		return pg.String(key)
	})

	_, err := table.ClientState.DELETE().
		WHERE(table.ClientState.Key.IN(keyExpressions...)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete keys: %w", err)
	}

	return nil
}

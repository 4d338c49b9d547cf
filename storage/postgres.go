package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const slotsTable = "storefront_slots"

// PostgresSlots keeps slots as jsonb rows
type PostgresSlots struct {
	db *sql.DB
	sq squirrel.StatementBuilderType
}

// OpenPostgres connects with the pgx driver and makes sure the slots table exists
func OpenPostgres(ctx context.Context, connStr string) (*PostgresSlots, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := NewPostgresSlots(db)
	if err := p.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return p, nil
}

// NewPostgresSlots wraps an already opened database
func NewPostgresSlots(db *sql.DB) *PostgresSlots {
	return &PostgresSlots{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// EnsureSchema creates the slots table when missing
func (p *PostgresSlots) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+slotsTable+` (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("creating %s: %w", slotsTable, err)
	}
	return nil
}

func (p *PostgresSlots) Load(ctx context.Context, key string, v any) (bool, error) {
	var raw []byte
	err := p.sq.Select("value").
		From(slotsTable).
		Where(squirrel.Eq{"key": key}).
		QueryRowContext(ctx).
		Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return true, decode(key, raw, v)
}

func (p *PostgresSlots) Save(ctx context.Context, key string, v any) error {
	data, err := encode(key, v)
	if err != nil {
		return err
	}
	_, err = p.sq.Insert(slotsTable).
		Columns("key", "value", "updated_at").
		Values(key, string(data), time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", key, err)
	}
	return nil
}

func (p *PostgresSlots) Delete(ctx context.Context, key string) error {
	_, err := p.sq.Delete(slotsTable).
		Where(squirrel.Eq{"key": key}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("deleting slot %q: %w", key, err)
	}
	return nil
}

func (p *PostgresSlots) Close() error {
	return p.db.Close()
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"rosea_server/structs"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type kvEntry struct {
	bun.BaseModel `bun:"table:kv_entries,alias:kv"`

	Key       string    `bun:"key,pk"`
	Value     []byte    `bun:"value,type:jsonb,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()"`
}

// PostgresStore keeps every key as a row in a single kv_entries table. This
// is the production backend: the same port the memory and redis stores
// implement, so no store logic changes when swapping it in.
type PostgresStore struct {
	db *bun.DB
}

func NewPostgresStore(cfg *structs.PostgresConfig) (*PostgresStore, error) {
	if cfg == nil {
		return nil, errors.New("postgres configuration is required")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithReadTimeout(cfg.ReadTimeout),
		pgdriver.WithWriteTimeout(cfg.WriteTimeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.NewCreateTable().
		Model((*kvEntry)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure kv_entries table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	entry := new(kvEntry)

	err := p.db.NewSelect().
		Model(entry).
		Where("kv.key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

func (p *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	entry := &kvEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return withRetry(ctx, func() error {
		_, err := p.db.NewInsert().
			Model(entry).
			On("CONFLICT (key) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		return err
	})
}

func (p *PostgresStore) Remove(ctx context.Context, key string) error {
	return withRetry(ctx, func() error {
		_, err := p.db.NewDelete().
			Model((*kvEntry)(nil)).
			Where("kv.key = ?", key).
			Exec(ctx)
		return err
	})
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}

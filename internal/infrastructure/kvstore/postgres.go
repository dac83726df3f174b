package kvstore

import (
	"context"
	"errors"
	"fmt"

	"calcplanner/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
	sq   sq.StatementBuilderType
}

var _ interfaces.IKeyValueStore = (*PostgresStore)(nil)

func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv_documents (
  doc_key    TEXT PRIMARY KEY,
  doc_value  BYTEA NOT NULL,
  updated_at TEXT NOT NULL
)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}
	return &PostgresStore{
		pool: pool,
		sq:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	q, args, err := s.sq.Select(colValue).From(tableName).Where(sq.Eq{colKey: key}).ToSql()
	if err != nil {
		return nil, false, err
	}
	var v []byte
	if err := s.pool.QueryRow(ctx, q, args...).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("postgres get %q: %w", key, err)
	}
	return v, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	q, args, err := s.sq.Insert(tableName).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, nowStamp()).
		Suffix("ON CONFLICT (doc_key) DO UPDATE SET doc_value = EXCLUDED.doc_value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("postgres put %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	q, args, err := s.sq.Delete(tableName).Where(sq.Eq{colKey: key}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, q, args...)
	return err
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

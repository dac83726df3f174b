package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"calcplanner/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
)

type SQLiteStore struct {
	DB *sql.DB
	SQ sq.StatementBuilderType
}

var _ interfaces.IKeyValueStore = (*SQLiteStore)(nil)

// NewSQLiteStore creates the documents table if needed.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv_documents (
  doc_key    TEXT PRIMARY KEY,
  doc_value  BLOB NOT NULL,
  updated_at TEXT NOT NULL
);`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &SQLiteStore{DB: db, SQ: sq.StatementBuilder}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	q, args, err := s.SQ.Select(colValue).From(tableName).Where(sq.Eq{colKey: key}).ToSql()
	if err != nil {
		return nil, false, err
	}
	var v []byte
	if err := s.DB.QueryRowContext(ctx, q, args...).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("sqlite get %q: %w", key, err)
	}
	return v, true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	q, args, err := s.SQ.Insert(tableName).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, nowStamp()).
		Suffix("ON CONFLICT(doc_key) DO UPDATE SET doc_value = excluded.doc_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := s.DB.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("sqlite put %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	q, args, err := s.SQ.Delete(tableName).Where(sq.Eq{colKey: key}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx, q, args...)
	return err
}

func (s *SQLiteStore) Close() error { return s.DB.Close() }

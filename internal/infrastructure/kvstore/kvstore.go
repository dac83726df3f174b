// Package kvstore holds the key-value backends behind the estimate and
// material repositories. Each value is one opaque JSON document.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calcplanner/internal/infrastructure/config"
	"calcplanner/internal/infrastructure/database"
	"calcplanner/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	tableName       = "kv_documents"
	colKey          = "doc_key"
	colValue        = "doc_value"
	colUpdatedAt    = "updated_at"
	updatedAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Open builds the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, log *zap.Logger) (interfaces.IKeyValueStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("kvstore")

	switch cfg.Driver {
	case config.DriverSQLite, "":
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s, err := NewSQLiteStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		log.Info("storage opened", zap.String("driver", config.DriverSQLite), zap.String("path", cfg.SQLitePath))
		return s, nil

	case config.DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("%s driver: DATABASE_URL is empty", config.DriverPostgres)
		}
		pg, err := database.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		s, err := NewPostgresStore(ctx, pg.Pool)
		if err != nil {
			pg.Close()
			return nil, err
		}
		log.Info("storage opened", zap.String("driver", config.DriverPostgres))
		return s, nil

	case config.DriverDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Info("storage opened",
			zap.String("driver", config.DriverDynamoDB),
			zap.String("table", cfg.DynamoDB.Table),
			zap.String("endpoint", cfg.DynamoDB.Endpoint),
		)
		return NewDynamoDBStore(client, cfg.DynamoDB.Table), nil

	case config.DriverMemory:
		log.Warn("using in-memory storage; data is lost on exit")
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

func nowStamp() string {
	return time.Now().UTC().Format(updatedAtLayout)
}

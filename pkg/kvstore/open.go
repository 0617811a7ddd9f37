package kvstore

import (
	"context"
	"fmt"
	"io"

	"github.com/noah-isme/edu-admin-client/pkg/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the store selected by cfg.Storage.Driver. The returned closer
// releases the underlying connection.
func Open(ctx context.Context, cfg *config.Config) (Store, io.Closer, error) {
	switch cfg.Storage.Driver {
	case "", config.StorageFile:
		s, err := NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	case config.StorageMemory:
		return NewMemoryStore(), nopCloser{}, nil
	case config.StorageRedis:
		client, err := NewRedis(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return NewRedisStore(client, cfg.Redis.KeyPrefix), client, nil
	case config.StoragePostgres:
		db, err := NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		s := NewSQLStore(db)
		if err := s.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return s, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

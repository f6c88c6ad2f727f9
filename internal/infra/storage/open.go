package storage

import (
	"context"

	"fieldbook/internal/infra/db"
	"fieldbook/internal/pkg/config"
	"fieldbook/internal/pkg/errs"
)

const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Open builds the blob store selected by cfg.Storage.Driver. The returned
// cleanup releases any connection it opened.
func Open(ctx context.Context, cfg config.Config) (BlobStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case DriverMemory:
		return NewMemoryStore(), noop, nil
	case DriverFile, "":
		s, err := NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	case DriverRedis:
		rdb, cleanup, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return NewRedisStore(rdb, cfg.Redis.KeyPrefix), cleanup, nil
	case DriverPostgres:
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		s := NewPostgresStore(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
		return s, cleanup, nil
	default:
		return nil, nil, errs.Newf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

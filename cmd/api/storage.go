package main

import (
	"context"
	"fmt"

	mem "petcare-registry/internal/adapters/storage/memory"
	pg "petcare-registry/internal/adapters/storage/postgres"
	"petcare-registry/internal/adapters/storage/s3kv"
	"petcare-registry/internal/adapters/storage/sqlite"
	"petcare-registry/internal/config"
	"petcare-registry/internal/ports/kv"
)

// openStore abre el backend configurado. Con migrate=true aplica el schema
// antes de devolver el store (los backends SQL).
func openStore(ctx context.Context, c config.Config, migrate bool) (kv.Store, func(), error) {
	noop := func() {}

	switch c.Storage.Backend {
	case config.BackendMemory:
		log.Warn("using in-memory storage, data is lost on restart", nil)
		return mem.NewKVStore(), noop, nil

	case config.BackendPostgres:
		if migrate {
			if err := pg.Migrate(c.Storage.DSN); err != nil {
				return nil, noop, err
			}
		}
		db, err := pg.Open(c.Storage.DSN)
		if err != nil {
			return nil, noop, err
		}
		return pg.NewKVStore(db), func() { _ = db.Close() }, nil

	case config.BackendSQLite:
		if migrate {
			if err := sqlite.Migrate(c.Storage.SQLitePath); err != nil {
				return nil, noop, err
			}
		}
		db, err := sqlite.Open(c.Storage.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return sqlite.NewKVStore(db), func() { _ = db.Close() }, nil

	case config.BackendS3:
		store, err := s3kv.New(ctx, s3kv.Config{
			Bucket:   c.Storage.S3Bucket,
			Region:   c.Storage.S3Region,
			Endpoint: c.Storage.S3Endpoint,
			Prefix:   c.Storage.S3Prefix,
		})
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
}

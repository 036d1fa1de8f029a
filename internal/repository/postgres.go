package repository

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/chai/pkg/cleanup"
	"github.com/limbo/chai/pkg/logger"
	"go.uber.org/zap"
)

var (
	poolsMu sync.Mutex
	pools   = map[string]*pgxpool.Pool{}
)

// connect returns one shared pool per connection string.
func connect(cfg DBConfig) *pgxpool.Pool {
	poolsMu.Lock()
	defer poolsMu.Unlock()
	connString := cfg.ConnString()
	if pool, ok := pools[connString]; ok {
		return pool
	}
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		logger.L().Fatal("creating pgxpool error", zap.Error(err))
	}
	err = pool.Ping(context.Background())
	if err != nil {
		logger.L().Fatal("error while pinging pgxpool", zap.Error(err))
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	pools[connString] = pool
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	err := conn.Ping(context.Background())
	if err != nil {
		logger.L().Fatal("error while pinging connection for "+repoName, zap.Error(err))
	}
}

type scanner interface {
	Scan(dest ...any) error
}

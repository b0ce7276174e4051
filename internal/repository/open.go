package repository

import (
	"context"
	"fmt"

	"travel_planner/internal/config"
	"travel_planner/internal/repository/db"
)

// CloseFunc releases the store connection.
type CloseFunc func(ctx context.Context) error

// Open connects to the configured backend and returns the wired repositories.
func Open(ctx context.Context, cfg config.DBConfig) (*Repository, CloseFunc, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		mdb, err := db.ConnectMongo(ctx, cfg.URL, cfg.Name, cfg.ConnectTimeout)
		if err != nil {
			return nil, nil, err
		}
		return NewMongoRepository(mdb), mdb.Client().Disconnect, nil
	case config.DriverSQLite:
		sdb, err := db.InitSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteRepository(sdb), func(context.Context) error { return sdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// Package repository selects and opens the configured store.
package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/dtroode/teashop-server/internal/config"
	"github.com/dtroode/teashop-server/internal/model"
	"github.com/dtroode/teashop-server/internal/repository/postgres"
	"github.com/dtroode/teashop-server/internal/repository/sqlite"
)

// Stores bundles the repositories backed by one open connection.
type Stores struct {
	Users model.UserStore
	Teas  model.TeaStore

	closer io.Closer
}

func (s *Stores) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Open connects to the store named by driver and migrates its schema.
func Open(ctx context.Context, driver, dsn string) (*Stores, error) {
	switch driver {
	case config.DriverSQLite:
		conn, err := sqlite.NewConnection(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:  sqlite.NewUserRepository(conn),
			Teas:   sqlite.NewTeaRepository(conn),
			closer: conn,
		}, nil
	case config.DriverPostgres:
		conn, err := postgres.NewConnection(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:  postgres.NewUserRepository(conn),
			Teas:   postgres.NewTeaRepository(conn),
			closer: conn,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

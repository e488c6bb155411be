// Package storage abre el almacenamiento configurado (PostgreSQL o SQLite) y expone
// sus repositorios detrás de las interfaces de dominio.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/directorio-api/internal/domain/repository"
	"github.com/jhoicas/directorio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/directorio-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/directorio-api/pkg/config"
)

// Storage repositorios listos para usar y la función que libera la conexión.
type Storage struct {
	Users     repository.UserRepository
	Companies repository.CompanyRepository
	close     func()
}

// Close libera la conexión subyacente.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open conecta según cfg.Driver y aplica las migraciones embebidas.
func Open(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Storage{
			Users:     store.Users(),
			Companies: store.Companies(),
			close:     func() { _ = store.Close() },
		}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Storage{
			Users:     postgres.NewUserRepository(pool, postgres.NewTxRunner(pool)),
			Companies: postgres.NewCompanyRepository(pool),
			close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento no soportado: %q", cfg.Driver)
	}
}

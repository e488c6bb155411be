package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, location, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre SQLite.
type CompanyRepo struct {
	q querier
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO companies (`+companyColumns+`) VALUES (?, ?, ?, ?, ?)`,
		company.ID, company.Name, company.Location, toMillis(company.CreatedAt), toMillis(company.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.ErrConflict, "Company with this name and location already exists")
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// FindByName obtiene la primera empresa insertada con ese nombre exacto.
func (r *CompanyRepo) FindByName(ctx context.Context, name string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE name = ? ORDER BY rowid LIMIT 1`, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return c, nil
}

// List devuelve todas las empresas en orden de inserción.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	return r.list(ctx, "list companies", `SELECT `+companyColumns+` FROM companies ORDER BY rowid`)
}

// SearchByName usa instr(): sensible a mayúsculas y sin comodines, a diferencia de LIKE en SQLite.
func (r *CompanyRepo) SearchByName(ctx context.Context, term string) ([]*entity.Company, error) {
	return r.list(ctx, "search companies",
		`SELECT `+companyColumns+` FROM companies WHERE instr(name, ?) > 0 ORDER BY rowid`, term)
}

func (r *CompanyRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Company, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCompany(row rowScanner) (*entity.Company, error) {
	var (
		c                entity.Company
		created, updated int64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Location, &created, &updated); err != nil {
		return nil, err
	}
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return &c, nil
}

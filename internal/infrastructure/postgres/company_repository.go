package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, location, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1::text::uuid, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.Location, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.ErrConflict, "Company with this name and location already exists")
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// FindByName obtiene la primera empresa (por creación) con ese nombre exacto.
func (r *CompanyRepo) FindByName(ctx context.Context, name string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1 ORDER BY created_at, id LIMIT 1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return c, nil
}

// List devuelve todas las empresas en orden de creación.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	return r.list(ctx, "list companies",
		`SELECT `+companyColumns+` FROM companies ORDER BY created_at, id`)
}

// SearchByName busca por subcadena sensible a mayúsculas. El término viaja como parámetro
// y sus comodines se escapan.
func (r *CompanyRepo) SearchByName(ctx context.Context, term string) ([]*entity.Company, error) {
	return r.list(ctx, "search companies",
		`SELECT `+companyColumns+` FROM companies
		  WHERE name LIKE '%' || $1 || '%' ESCAPE '\'
		  ORDER BY created_at, id`, escapeLike(term))
}

func (r *CompanyRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, query, args...)
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

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Location, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

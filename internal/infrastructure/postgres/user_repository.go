package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, password_hash, api_key, role, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q  Querier
	tx *TxRunner
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// tx puede ser nil cuando q ya es una transacción.
func NewUserRepository(q Querier, tx *TxRunner) *UserRepo {
	return &UserRepo{q: q, tx: tx}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1::text::uuid, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.APIKey, string(user.Role),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewError(domain.ErrConflict, "Email address is already in use")
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene un usuario por ID.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return r.findOne(ctx, "get user by id", `SELECT `+userColumns+` FROM users WHERE id = $1::text::uuid`, id)
}

// FindByEmail obtiene un usuario por email (comparación exacta).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "get user by email", `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// FindByAPIKey obtiene el usuario dueño de la API key.
func (r *UserRepo) FindByAPIKey(ctx context.Context, apiKey string) (*entity.User, error) {
	return r.findOne(ctx, "get user by api key", `SELECT `+userColumns+` FROM users WHERE api_key = $1 LIMIT 1`, apiKey)
}

// UpdateRole cambia el rol de un usuario.
func (r *UserRepo) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	cmd, err := r.q.Exec(ctx, `UPDATE users SET role = $2, updated_at = now() WHERE id = $1::text::uuid`, id, string(role))
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewError(domain.ErrNotFound, "No user with id "+id)
	}
	return nil
}

// ListByRole lista los usuarios con el rol dado, en orden de creación.
func (r *UserRepo) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at, id`, string(role))
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// PromoteRequested bloquea las filas elegibles y las pasa a admin en la misma transacción.
func (r *UserRepo) PromoteRequested(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	if r.tx == nil {
		return promoteRequested(ctx, r.q, ids)
	}
	var promoted []string
	err := r.tx.Run(ctx, func(q Querier) error {
		var err error
		promoted, err = promoteRequested(ctx, q, ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

func promoteRequested(ctx context.Context, q Querier, ids []string) ([]string, error) {
	rows, err := q.Query(ctx, `
		SELECT id::text FROM users
		 WHERE id = ANY($1::text[]::uuid[]) AND role = $2
		 ORDER BY created_at, id
		 FOR UPDATE`, ids, string(entity.RoleRequestedForAdmin))
	if err != nil {
		return nil, fmt.Errorf("select requested users: %w", err)
	}
	matched, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan requested users: %w", err)
	}
	if len(matched) == 0 {
		return []string{}, nil
	}
	_, err = q.Exec(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = ANY($1::text[]::uuid[])`,
		matched, string(entity.RoleAdmin))
	if err != nil {
		return nil, fmt.Errorf("promote users: %w", err)
	}
	return matched, nil
}

func (r *UserRepo) findOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.APIKey, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	parsed, ok := entity.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("scan user %s: rol desconocido %q", u.ID, role)
	}
	u.Role = parsed
	return &u, nil
}

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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, password_hash, api_key, role, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	store *Store
	q     querier
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.APIKey, string(user.Role),
		toMillis(user.CreatedAt), toMillis(user.UpdatedAt),
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
	return r.findOne(ctx, "get user by id", `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// FindByEmail obtiene un usuario por email exacto.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "get user by email", `SELECT `+userColumns+` FROM users WHERE email = ? LIMIT 1`, email)
}

// FindByAPIKey obtiene el usuario dueño de la API key.
func (r *UserRepo) FindByAPIKey(ctx context.Context, apiKey string) (*entity.User, error) {
	return r.findOne(ctx, "get user by api key", `SELECT `+userColumns+` FROM users WHERE api_key = ? LIMIT 1`, apiKey)
}

// UpdateRole cambia el rol de un usuario.
func (r *UserRepo) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`, string(role), toMillis(timeNow()), id)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NewError(domain.ErrNotFound, "No user with id "+id)
	}
	return nil
}

// ListByRole lista los usuarios con el rol dado, en orden de inserción.
func (r *UserRepo) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY rowid`, string(role))
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

// PromoteRequested selecciona y actualiza dentro de una transacción IMMEDIATE.
func (r *UserRepo) PromoteRequested(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	var promoted []string
	err := r.store.withTx(ctx, func(q querier) error {
		args := make([]any, 0, len(ids)+1)
		args = append(args, string(entity.RoleRequestedForAdmin))
		for _, id := range ids {
			args = append(args, id)
		}
		rows, err := q.QueryContext(ctx,
			`SELECT id FROM users WHERE role = ? AND id IN (`+placeholders(len(ids))+`) ORDER BY rowid`, args...)
		if err != nil {
			return fmt.Errorf("select requested users: %w", err)
		}
		matched := make([]string, 0, len(ids))
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return fmt.Errorf("scan requested users: %w", err)
			}
			matched = append(matched, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("scan requested users: %w", err)
		}
		if len(matched) == 0 {
			promoted = matched
			return nil
		}

		upd := make([]any, 0, len(matched)+2)
		upd = append(upd, string(entity.RoleAdmin), toMillis(timeNow()))
		for _, id := range matched {
			upd = append(upd, id)
		}
		if _, err := q.ExecContext(ctx,
			`UPDATE users SET role = ?, updated_at = ? WHERE id IN (`+placeholders(len(matched))+`)`, upd...); err != nil {
			return fmt.Errorf("promote users: %w", err)
		}
		promoted = matched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return promoted, nil
}

func (r *UserRepo) findOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		u                entity.User
		role             string
		created, updated int64
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.APIKey, &role, &created, &updated); err != nil {
		return nil, err
	}
	parsed, ok := entity.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("scan user %s: rol desconocido %q", u.ID, role)
	}
	u.Role = parsed
	u.CreatedAt = fromMillis(created)
	u.UpdatedAt = fromMillis(updated)
	return &u, nil
}

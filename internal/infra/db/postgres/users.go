package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	domainuser "staybook/internal/domain/user"
)

type UserRepository struct {
	tx *sql.Tx
}

var _ domainuser.Repository = (*UserRepository)(nil)

func (r *UserRepository) ByID(ctx context.Context, id domainuser.UserID) (*domainuser.User, error) {
	query := `SELECT id, name, email, password FROM users WHERE id = $1`
	u, err := r.scanOne(r.tx.QueryRowContext(ctx, query, int64(id)))
	if err != nil {
		return nil, err
	}
	return u, r.loadRoles(ctx, u)
}

func (r *UserRepository) ByName(ctx context.Context, name string) (*domainuser.User, error) {
	query := `SELECT id, name, email, password FROM users WHERE name = $1`
	u, err := r.scanOne(r.tx.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, err
	}
	return u, r.loadRoles(ctx, u)
}

func (r *UserRepository) scanOne(row *sql.Row) (*domainuser.User, error) {
	var u domainuser.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainuser.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: user lookup: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) loadRoles(ctx context.Context, u *domainuser.User) error {
	rows, err := r.tx.QueryContext(ctx,
		`SELECT authority FROM user_roles WHERE user_id = $1 ORDER BY id`, int64(u.ID))
	if err != nil {
		return fmt.Errorf("postgres: load roles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return fmt.Errorf("postgres: scan role: %w", err)
		}
		u.Roles = append(u.Roles, domainuser.Role(role))
	}
	return rows.Err()
}

func (r *UserRepository) List(ctx context.Context) ([]domainuser.User, error) {
	rows, err := r.tx.QueryContext(ctx, `SELECT id, name, email, password FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres: list users: %w", err)
	}
	defer rows.Close()

	var out []domainuser.User
	for rows.Next() {
		var u domainuser.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("postgres: scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if err := r.loadRoles(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domainuser.User) error {
	query := `INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id`
	err := r.tx.QueryRowContext(ctx, query, u.Name, u.Email, u.PasswordHash).Scan(&u.ID)
	if isUniqueViolation(err) {
		return domainuser.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("postgres: create user: %w", err)
	}
	for _, role := range u.Roles {
		if _, err := r.tx.ExecContext(ctx,
			`INSERT INTO user_roles (user_id, authority) VALUES ($1, $2)`,
			int64(u.ID), string(role),
		); err != nil {
			return fmt.Errorf("postgres: create user role: %w", err)
		}
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domainuser.User) error {
	query := `UPDATE users SET name = $2, email = $3, password = $4 WHERE id = $1`
	res, err := r.tx.ExecContext(ctx, query, int64(u.ID), u.Name, u.Email, u.PasswordHash)
	if isUniqueViolation(err) {
		return domainuser.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("postgres: update user: %w", err)
	}
	return requireRow(res, domainuser.ErrNotFound)
}

func (r *UserRepository) Delete(ctx context.Context, id domainuser.UserID) error {
	res, err := r.tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("postgres: delete user: %w", err)
	}
	return requireRow(res, domainuser.ErrNotFound)
}

// isUniqueViolation matches Postgres error class 23505.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

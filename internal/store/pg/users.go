package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dropDatabas3/postjohn/internal/store/core"
)

// FindUserByEmail busca un usuario por email (case-exact: el caller
// normaliza a lowercase antes).
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*core.User, error) {
	const query = `
		SELECT id, email, password_hash, created_at
		FROM app_user
		WHERE email = $1
	`
	var u core.User
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pg: find user: %w", err)
	}
	return &u, nil
}

// CreateUser inserta el usuario. El unique index sobre email resuelve la
// carrera de dos registros simultáneos: el perdedor recibe ErrDuplicateEmail.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (*core.User, error) {
	const query = `
		INSERT INTO app_user (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	u := core.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
	}
	err := s.pool.QueryRow(ctx, query, u.ID, u.Email, u.PasswordHash).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, core.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("pg: create user: %w", err)
	}
	return &u, nil
}

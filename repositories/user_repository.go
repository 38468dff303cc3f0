package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"storefront/config"
	"storefront/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create inserts a new user. The unique index on email is the source of truth
// for duplicates; a 23505 violation maps to ErrDuplicate rather than a
// read-then-insert check.
func (r *UserRepository) Create(ctx context.Context, fullName, email, passwordHash string) (*models.User, error) {
	user := &models.User{
		FullName: fullName,
		Email:    email,
	}

	err := config.DB.QueryRow(ctx,
		"INSERT INTO users (full_name, email, password_hash, created_at) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		fullName, email, passwordHash, time.Now(),
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := config.DB.QueryRow(ctx,
		"SELECT id, full_name, email, password_hash, created_at FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

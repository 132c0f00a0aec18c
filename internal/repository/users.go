package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// User is a registered account. Password holds the bcrypt hash.
type User struct {
	ID        uuid.UUID
	Username  string
	Password  string
	CreatedAt time.Time
}

// UserRepository persists accounts.
type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user with an already-hashed password.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	u := &User{
		ID:        uuid.New(),
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.pool.Exec(ctx,
		`INSERT INTO users (id, username, password, created_at) VALUES ($1, $2, $3, $4)`,
		u.ID, u.Username, u.Password, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user %s: %w", username, err)
	}
	return u, nil
}

// GetByUsername fetches a user by name.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM users WHERE username = $1`,
		username).Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

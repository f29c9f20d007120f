package users

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

var (
	ErrEmailTaken = errors.New("user already exists")
	ErrNotFound   = errors.New("user not found")
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Create(ctx context.Context, username, email, passwordHash string) (User, error) {
	var dup string
	err := r.DB.QueryRow(ctx, `SELECT id FROM users WHERE email=$1`, email).Scan(&dup)
	if err == nil {
		return User{}, ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return User{}, err
	}

	u := User{ID: uuid.NewString(), Username: username, Email: email, PasswordHash: passwordHash}
	err = r.DB.QueryRow(ctx, `
		INSERT INTO users(id, username, email, password) VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		u.ID, u.Username, u.Email, u.PasswordHash).Scan(&u.CreatedAt)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.DB.QueryRow(ctx, `
		SELECT id, username, email, password, created_at FROM users WHERE email=$1`,
		email).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (User, error) {
	var u User
	err := r.DB.QueryRow(ctx, `
		SELECT id, username, email, password, created_at FROM users WHERE id=$1`,
		id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

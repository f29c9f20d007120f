package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) CreateGenre(ctx context.Context, name string) (Genre, error) {
	var exists string
	err := r.DB.QueryRow(ctx,
		`SELECT id FROM genres WHERE LOWER(name) = LOWER($1) AND deleted_at IS NULL`,
		name).Scan(&exists)
	if err == nil {
		return Genre{}, ErrDuplicateGenre
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Genre{}, err
	}

	g := Genre{ID: uuid.NewString(), Name: name}
	err = r.DB.QueryRow(ctx, `
		INSERT INTO genres(id, name) VALUES ($1, $2)
		RETURNING created_at, updated_at`,
		g.ID, g.Name).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return Genre{}, err
	}
	return g, nil
}

func (r *Repo) ListGenres(ctx context.Context, p ListParams) ([]Genre, int, error) {
	listSQL, countSQL, err := buildListGenres(p)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, listSQL)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Genre
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, 0, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.DB.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *Repo) GetGenre(ctx context.Context, id string) (Genre, error) {
	var g Genre
	err := r.DB.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at FROM genres
		WHERE id = $1 AND deleted_at IS NULL`,
		id).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Genre{}, ErrGenreNotFound
	}
	if err != nil {
		return Genre{}, err
	}
	return g, nil
}

// RenameGenre is the only genre mutation besides delete; the new name must
// not collide (case-insensitively) with another live genre.
func (r *Repo) RenameGenre(ctx context.Context, id, name string) (Genre, error) {
	if _, err := r.GetGenre(ctx, id); err != nil {
		return Genre{}, err
	}

	var dup string
	err := r.DB.QueryRow(ctx, `
		SELECT id FROM genres
		WHERE LOWER(name) = LOWER($1) AND id <> $2 AND deleted_at IS NULL`,
		name, id).Scan(&dup)
	if err == nil {
		return Genre{}, ErrDuplicateGenre
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Genre{}, err
	}

	var g Genre
	err = r.DB.QueryRow(ctx, `
		UPDATE genres SET name = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, name, created_at, updated_at`,
		id, name).Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Genre{}, ErrGenreNotFound
	}
	if err != nil {
		return Genre{}, err
	}
	return g, nil
}

func (r *Repo) DeleteGenre(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE genres SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrGenreNotFound
	}
	return nil
}

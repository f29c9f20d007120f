package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *Repo) CreateBook(ctx context.Context, nb NewBook) (Book, error) {
	var dup string
	err := r.DB.QueryRow(ctx,
		`SELECT id FROM books WHERE LOWER(title) = LOWER($1) AND deleted_at IS NULL`,
		nb.Title).Scan(&dup)
	if err == nil {
		return Book{}, ErrDuplicateTitle
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Book{}, err
	}

	genre, err := r.GetGenre(ctx, nb.GenreID)
	if err != nil {
		return Book{}, err
	}

	b := Book{
		ID:              uuid.NewString(),
		Title:           nb.Title,
		Writer:          nb.Writer,
		Publisher:       nb.Publisher,
		Description:     nb.Description,
		PublicationYear: nb.PublicationYear,
		Price:           nb.Price,
		StockQuantity:   nb.StockQuantity,
		GenreID:         nb.GenreID,
		GenreName:       genre.Name,
	}
	err = r.DB.QueryRow(ctx, `
		INSERT INTO books(id, title, writer, publisher, description, publication_year, price, stock_quantity, genre_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		b.ID, b.Title, b.Writer, b.Publisher, b.Description, b.PublicationYear,
		b.Price, b.StockQuantity, b.GenreID).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

func (r *Repo) ListBooks(ctx context.Context, p ListParams) ([]Book, int, error) {
	return r.listBooks(ctx, p, "", []string{"b.title", "b.writer", "b.publisher"})
}

// ListBooksByGenre validates the genre first so a missing or soft-deleted
// genre reads as not-found rather than an empty page.
func (r *Repo) ListBooksByGenre(ctx context.Context, genreID string, p ListParams) ([]Book, int, error) {
	if _, err := r.GetGenre(ctx, genreID); err != nil {
		return nil, 0, err
	}
	return r.listBooks(ctx, p, genreID, []string{"b.title", "b.writer"})
}

func (r *Repo) listBooks(ctx context.Context, p ListParams, genreID string, searchCols []string) ([]Book, int, error) {
	listSQL, countSQL, err := buildListBooks(p, genreID, searchCols)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, listSQL)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Writer, &b.Publisher, &b.Description,
			&b.PublicationYear, &b.Price, &b.StockQuantity, &b.GenreID, &b.GenreName,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
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

func (r *Repo) GetBook(ctx context.Context, id string) (Book, error) {
	var b Book
	err := r.DB.QueryRow(ctx, `
		SELECT b.id, b.title, b.writer, b.publisher, b.description, b.publication_year,
		       b.price, b.stock_quantity, b.genre_id, g.name, b.created_at, b.updated_at
		FROM books b JOIN genres g ON g.id = b.genre_id
		WHERE b.id = $1 AND b.deleted_at IS NULL`,
		id).Scan(&b.ID, &b.Title, &b.Writer, &b.Publisher, &b.Description,
		&b.PublicationYear, &b.Price, &b.StockQuantity, &b.GenreID, &b.GenreName,
		&b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrBookNotFound
	}
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

// UpdateBook applies the allow-listed fields only. Title, writer, publisher,
// year and genre are immutable after creation.
func (r *Repo) UpdateBook(ctx context.Context, id string, patch BookPatch) (Book, error) {
	b, err := r.GetBook(ctx, id)
	if err != nil {
		return Book{}, err
	}
	if patch.Description != nil {
		b.Description = patch.Description
	}
	if patch.Price != nil {
		b.Price = *patch.Price
	}
	if patch.StockQuantity != nil {
		b.StockQuantity = *patch.StockQuantity
	}

	err = r.DB.QueryRow(ctx, `
		UPDATE books SET description = $2, price = $3, stock_quantity = $4, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`,
		id, b.Description, b.Price, b.StockQuantity).Scan(&b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, ErrBookNotFound
	}
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

func (r *Repo) DeleteBook(ctx context.Context, id string) error {
	ct, err := r.DB.Exec(ctx, `
		UPDATE books SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrBookNotFound
	}
	return nil
}

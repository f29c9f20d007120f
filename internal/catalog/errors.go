package catalog

import "errors"

var (
	ErrGenreNotFound  = errors.New("genre not found")
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateGenre = errors.New("genre name already exists")
	ErrDuplicateTitle = errors.New("book title already exists")
)

package catalog

import "time"

type Genre struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Book struct {
	ID              string
	Title           string
	Writer          string
	Publisher       string
	Description     *string
	PublicationYear int
	Price           int
	StockQuantity   int
	GenreID         string
	GenreName       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NewBook struct {
	Title           string
	Writer          string
	Publisher       string
	Description     *string
	PublicationYear int
	Price           int
	StockQuantity   int
	GenreID         string
}

// BookPatch carries the only fields a book may change after creation.
type BookPatch struct {
	Description   *string
	Price         *int
	StockQuantity *int
}

type ListParams struct {
	Page       int
	Limit      int
	Search     string
	OrderTitle string // "asc" | "desc"
	OrderYear  string // "asc" | "desc"
	OrderName  string // genres only
}

func (p ListParams) Offset() int { return (p.Page - 1) * p.Limit }

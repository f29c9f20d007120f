package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrOrderNotFound = errors.New("transaction not found")
)

type BookNotFoundError struct{ BookID string }

func (e *BookNotFoundError) Error() string {
	return fmt.Sprintf("book %s not found", e.BookID)
}

type InvalidQuantityError struct{ BookID string }

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity for book %s", e.BookID)
}

type InsufficientStockError struct {
	Title     string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Title)
}

package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// PlaceOrder commits the whole order or nothing: user check, per-item book
// lookup with a row lock, stock check, order + line inserts and stock
// decrements all run inside one transaction. The FOR UPDATE lock serializes
// concurrent purchases of the same book, so stock can never go negative.
func (r *Repo) PlaceOrder(ctx context.Context, userID string, items []ItemInput) (OrderResult, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return OrderResult{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var uid string
	if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id=$1`, userID).Scan(&uid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return OrderResult{}, ErrUserNotFound
		}
		return OrderResult{}, err
	}

	orderID := uuid.NewString()
	if _, err := tx.Exec(ctx, `INSERT INTO orders(id, user_id) VALUES ($1, $2)`, orderID, userID); err != nil {
		return OrderResult{}, err
	}

	res := OrderResult{OrderID: orderID}
	for i, it := range items {
		if it.Quantity <= 0 {
			return OrderResult{}, &InvalidQuantityError{BookID: it.BookID}
		}

		var title string
		var price, stock int
		err := tx.QueryRow(ctx, `
			SELECT title, price, stock_quantity FROM books
			WHERE id=$1 AND deleted_at IS NULL
			FOR UPDATE`, it.BookID).Scan(&title, &price, &stock)
		if errors.Is(err, pgx.ErrNoRows) {
			return OrderResult{}, &BookNotFoundError{BookID: it.BookID}
		}
		if err != nil {
			return OrderResult{}, err
		}
		if stock < it.Quantity {
			return OrderResult{}, &InsufficientStockError{Title: title, Requested: it.Quantity, Available: stock}
		}

		// line_no preserves the input order for later detail reads
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items(order_id, line_no, book_id, quantity)
			VALUES ($1, $2, $3, $4)`,
			orderID, i+1, it.BookID, it.Quantity); err != nil {
			return OrderResult{}, err
		}
		if _, err := tx.Exec(ctx, `
			UPDATE books SET stock_quantity = stock_quantity - $2, updated_at = now()
			WHERE id=$1`, it.BookID, it.Quantity); err != nil {
			return OrderResult{}, err
		}

		res.TotalQuantity += it.Quantity
		res.TotalPrice += price * it.Quantity
	}

	if err := tx.Commit(ctx); err != nil {
		return OrderResult{}, err
	}
	return res, nil
}

// ListOrders returns every order with its totals. Soft-deleted books still
// count; historical orders keep referencing them.
func (r *Repo) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT o.id,
		       COALESCE(SUM(oi.quantity), 0),
		       COALESCE(SUM(oi.quantity * b.price), 0)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN books b ON b.id = oi.book_id
		GROUP BY o.id, o.created_at
		ORDER BY o.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderSummary
	for rows.Next() {
		var s OrderSummary
		if err := rows.Scan(&s.ID, &s.TotalQuantity, &s.TotalPrice); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) GetOrder(ctx context.Context, orderID string) (OrderDetail, error) {
	var id string
	err := r.DB.QueryRow(ctx, `SELECT id FROM orders WHERE id=$1`, orderID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return OrderDetail{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderDetail{}, err
	}

	rows, err := r.DB.Query(ctx, `
		SELECT oi.book_id, b.title, oi.quantity, oi.quantity * b.price
		FROM order_items oi
		JOIN books b ON b.id = oi.book_id
		WHERE oi.order_id = $1
		ORDER BY oi.line_no`, orderID)
	if err != nil {
		return OrderDetail{}, err
	}
	defer rows.Close()

	d := OrderDetail{ID: orderID, Items: []OrderLine{}}
	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.BookID, &l.BookTitle, &l.Quantity, &l.SubtotalPrice); err != nil {
			return OrderDetail{}, err
		}
		d.Items = append(d.Items, l)
		d.TotalQuantity += l.Quantity
		d.TotalPrice += l.SubtotalPrice
	}
	return d, rows.Err()
}

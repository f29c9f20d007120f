package checkout

import (
	"context"
	"math"
)

const noData = "No data"

// Stats scans all orders for totals and groups units sold by genre.
// Read-only.
func (r *Repo) Stats(ctx context.Context) (Statistics, error) {
	var count, totalAmount int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return Statistics{}, err
	}
	if err := r.DB.QueryRow(ctx, `
		SELECT COALESCE(SUM(oi.quantity * b.price), 0)
		FROM order_items oi
		JOIN books b ON b.id = oi.book_id`).Scan(&totalAmount); err != nil {
		return Statistics{}, err
	}

	sales, err := r.genreSales(ctx)
	if err != nil {
		return Statistics{}, err
	}
	most, fewest := GenreExtremes(sales)

	return Statistics{
		TotalTransactions:        count,
		AverageTransactionAmount: AverageAmount(totalAmount, count),
		MostBookSalesGenre:       most,
		FewestBookSalesGenre:     fewest,
	}, nil
}

// genreSales returns units sold per live genre, in genre creation order.
// Sales through soft-deleted books still count toward their genre.
func (r *Repo) genreSales(ctx context.Context) ([]GenreSales, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT g.name, COALESCE(SUM(oi.quantity), 0)
		FROM genres g
		LEFT JOIN books b ON b.genre_id = g.id
		LEFT JOIN order_items oi ON oi.book_id = b.id
		WHERE g.deleted_at IS NULL
		GROUP BY g.id, g.name, g.created_at
		ORDER BY g.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GenreSales
	for rows.Next() {
		var s GenreSales
		if err := rows.Scan(&s.Name, &s.UnitsSold); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func AverageAmount(totalAmount, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(totalAmount) / float64(count)))
}

// GenreExtremes picks the best and worst selling genre from sales listed in
// creation order. Ties: the earliest genre wins "most", the latest wins
// "fewest", matching a stable descending sort over the same list.
func GenreExtremes(sales []GenreSales) (most, fewest string) {
	if len(sales) == 0 {
		return noData, noData
	}
	best, worst := sales[0], sales[0]
	for _, s := range sales[1:] {
		if s.UnitsSold > best.UnitsSold {
			best = s
		}
		if s.UnitsSold <= worst.UnitsSold {
			worst = s
		}
	}
	return best.Name, worst.Name
}

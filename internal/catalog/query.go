package catalog

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

const dialectPostgres = "postgres"

var pg = goqu.Dialect(dialectPostgres)

func orderExp(col, dir string) exp.OrderedExpression {
	if dir == "desc" {
		return goqu.I(col).Desc()
	}
	return goqu.I(col).Asc()
}

func searchAny(pattern string, cols ...string) exp.ExpressionList {
	exps := make([]goqu.Expression, 0, len(cols))
	for _, c := range cols {
		exps = append(exps, goqu.I(c).ILike(pattern))
	}
	return goqu.Or(exps...)
}

// buildListBooks returns the page query and the matching count query.
// genreID narrows to one genre; the search column set differs between the
// all-books and by-genre listings.
func buildListBooks(p ListParams, genreID string, searchCols []string) (listSQL, countSQL string, err error) {
	where := []goqu.Expression{goqu.I("b.deleted_at").IsNull()}
	if genreID != "" {
		where = append(where, goqu.I("b.genre_id").Eq(genreID))
	}
	if p.Search != "" {
		where = append(where, searchAny("%"+p.Search+"%", searchCols...))
	}

	listStmt := pg.From(goqu.T("books").As("b")).
		Join(goqu.T("genres").As("g"), goqu.On(goqu.I("g.id").Eq(goqu.I("b.genre_id")))).
		Select(
			goqu.I("b.id"), goqu.I("b.title"), goqu.I("b.writer"), goqu.I("b.publisher"),
			goqu.I("b.description"), goqu.I("b.publication_year"), goqu.I("b.price"),
			goqu.I("b.stock_quantity"), goqu.I("b.genre_id"), goqu.I("g.name"),
			goqu.I("b.created_at"), goqu.I("b.updated_at"),
		).
		Where(where...).
		Order(orderExp("b.title", p.OrderTitle), orderExp("b.publication_year", p.OrderYear)).
		Limit(uint(p.Limit)).
		Offset(uint(p.Offset()))

	listSQL, _, err = listStmt.ToSQL()
	if err != nil {
		return "", "", err
	}

	countStmt := pg.From(goqu.T("books").As("b")).
		Select(goqu.COUNT("*")).
		Where(where...)
	countSQL, _, err = countStmt.ToSQL()
	if err != nil {
		return "", "", err
	}
	return listSQL, countSQL, nil
}

func buildListGenres(p ListParams) (listSQL, countSQL string, err error) {
	where := []goqu.Expression{goqu.I("deleted_at").IsNull()}
	if p.Search != "" {
		where = append(where, goqu.I("name").ILike("%"+p.Search+"%"))
	}

	listStmt := pg.From("genres").
		Select("id", "name").
		Where(where...).
		Order(orderExp("name", p.OrderName)).
		Limit(uint(p.Limit)).
		Offset(uint(p.Offset()))
	listSQL, _, err = listStmt.ToSQL()
	if err != nil {
		return "", "", err
	}

	countStmt := pg.From("genres").Select(goqu.COUNT("*")).Where(where...)
	countSQL, _, err = countStmt.ToSQL()
	if err != nil {
		return "", "", err
	}
	return listSQL, countSQL, nil
}

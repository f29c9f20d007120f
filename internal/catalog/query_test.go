package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListBooks(t *testing.T) {
	p := ListParams{Page: 2, Limit: 10, Search: "go", OrderTitle: "asc", OrderYear: "desc"}

	listSQL, countSQL, err := buildListBooks(p, "", []string{"b.title", "b.writer", "b.publisher"})
	require.NoError(t, err)

	// soft-deleted rows are always filtered
	assert.Contains(t, listSQL, "IS NULL")
	assert.Contains(t, countSQL, "IS NULL")
	// search is case-insensitive across all three text columns
	assert.Contains(t, listSQL, "ILIKE")
	assert.Contains(t, listSQL, "%go%")
	assert.Contains(t, listSQL, "writer")
	assert.Contains(t, listSQL, "publisher")
	// page 2 of 10
	assert.Contains(t, listSQL, "LIMIT 10")
	assert.Contains(t, listSQL, "OFFSET 10")
	assert.Contains(t, listSQL, "ASC")
	assert.Contains(t, listSQL, "DESC")
	// the count query has no paging
	assert.NotContains(t, countSQL, "LIMIT")
	assert.NotContains(t, countSQL, "OFFSET")
}

func TestBuildListBooks_GenreFilter(t *testing.T) {
	p := ListParams{Page: 1, Limit: 10}

	listSQL, countSQL, err := buildListBooks(p, "genre-1", []string{"b.title", "b.writer"})
	require.NoError(t, err)
	assert.Contains(t, listSQL, "genre_id")
	assert.Contains(t, listSQL, "genre-1")
	assert.Contains(t, countSQL, "genre-1")
}

func TestBuildListGenres(t *testing.T) {
	p := ListParams{Page: 1, Limit: 5, Search: "prog", OrderName: "desc"}

	listSQL, countSQL, err := buildListGenres(p)
	require.NoError(t, err)
	assert.Contains(t, listSQL, "IS NULL")
	assert.Contains(t, listSQL, "ILIKE")
	assert.Contains(t, listSQL, "%prog%")
	assert.Contains(t, listSQL, "DESC")
	assert.Contains(t, listSQL, "LIMIT 5")
	assert.NotContains(t, countSQL, "LIMIT")
}

func TestListParamsOffset(t *testing.T) {
	assert.Equal(t, 0, ListParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, ListParams{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, ListParams{Page: 5, Limit: 10}.Offset())
}

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageMeta(t *testing.T) {
	intp := func(i int) *int { return &i }

	tests := []struct {
		name     string
		page     int
		limit    int
		total    int
		wantPrev *int
		wantNext *int
	}{
		{"first page with more", 1, 10, 25, nil, intp(2)},
		{"middle page", 2, 10, 25, intp(1), intp(3)},
		{"last page", 3, 10, 25, intp(2), nil},
		{"single page", 1, 10, 5, nil, nil},
		{"empty", 1, 10, 0, nil, nil},
		{"exact boundary", 2, 10, 20, intp(1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := PageMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, m.Page)
			assert.Equal(t, tt.limit, m.Limit)
			assert.Equal(t, tt.wantPrev, m.PrevPage)
			assert.Equal(t, tt.wantNext, m.NextPage)
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	rec := httptest.NewRecorder()
	OKPaged(rec, http.StatusOK, "listed", []string{"a"}, PageMeta(1, 10, 25))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "success")
	assert.Contains(t, body, "message")
	assert.Contains(t, body, "data")
	assert.Contains(t, body, "meta")

	var meta map[string]any
	require.NoError(t, json.Unmarshal(body["meta"], &meta))
	assert.Nil(t, meta["prev_page"])
	assert.Equal(t, float64(2), meta["next_page"])
}

func TestFailOmitsDataAndMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, http.StatusBadRequest, "nope")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "nope", body["message"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "meta")
}

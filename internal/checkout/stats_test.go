package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageAmount(t *testing.T) {
	tests := []struct {
		name  string
		total int
		count int
		want  int
	}{
		{"no orders", 0, 0, 0},
		// one order of 2x$10 and one of 1x$20: (20+20)/2
		{"two equal orders", 40, 2, 20},
		{"rounds half up", 25, 2, 13},
		{"rounds down", 10, 3, 3},
		{"exact", 300, 3, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageAmount(tt.total, tt.count))
		})
	}
}

func TestGenreExtremes(t *testing.T) {
	tests := []struct {
		name       string
		sales      []GenreSales
		wantMost   string
		wantFewest string
	}{
		{
			name:       "no genres",
			sales:      nil,
			wantMost:   "No data",
			wantFewest: "No data",
		},
		{
			name:       "single genre",
			sales:      []GenreSales{{Name: "Programming", UnitsSold: 3}},
			wantMost:   "Programming",
			wantFewest: "Programming",
		},
		{
			name: "distinct sales",
			sales: []GenreSales{
				{Name: "Programming", UnitsSold: 10},
				{Name: "Databases", UnitsSold: 2},
				{Name: "Networking", UnitsSold: 7},
			},
			wantMost:   "Programming",
			wantFewest: "Databases",
		},
		{
			// ties resolve like a stable descending sort over creation
			// order: first of the top group, last of the bottom group
			name: "tied top and bottom",
			sales: []GenreSales{
				{Name: "Programming", UnitsSold: 5},
				{Name: "Databases", UnitsSold: 5},
				{Name: "Networking", UnitsSold: 1},
				{Name: "Security", UnitsSold: 1},
			},
			wantMost:   "Programming",
			wantFewest: "Security",
		},
		{
			name: "all zero",
			sales: []GenreSales{
				{Name: "Programming", UnitsSold: 0},
				{Name: "Databases", UnitsSold: 0},
			},
			wantMost:   "Programming",
			wantFewest: "Databases",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			most, fewest := GenreExtremes(tt.sales)
			assert.Equal(t, tt.wantMost, most)
			assert.Equal(t, tt.wantFewest, fewest)
		})
	}
}

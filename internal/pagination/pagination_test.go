package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{
			name:    "una sola página no renderiza nada",
			current: 1,
			total:   1,
			want:    nil,
		},
		{
			name:    "cero páginas no renderiza nada",
			current: 1,
			total:   0,
			want:    nil,
		},
		{
			name:    "pocas páginas sin puntos suspensivos",
			current: 3,
			total:   5,
			want:    []int{1, 2, 3, 4, 5},
		},
		{
			name:    "exactamente siete páginas completas",
			current: 7,
			total:   7,
			want:    []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:    "al principio",
			current: 1,
			total:   10,
			want:    []int{1, 2, 3, 4, 5, Ellipsis, 10},
		},
		{
			name:    "página tres sigue anclada al principio",
			current: 3,
			total:   10,
			want:    []int{1, 2, 3, 4, 5, Ellipsis, 10},
		},
		{
			name:    "cerca del final",
			current: 8,
			total:   10,
			want:    []int{1, Ellipsis, 6, 7, 8, 9, 10},
		},
		{
			name:    "última página",
			current: 10,
			total:   10,
			want:    []int{1, Ellipsis, 6, 7, 8, 9, 10},
		},
		{
			name:    "en el medio",
			current: 5,
			total:   10,
			want:    []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10},
		},
		{
			name:    "en el medio de un total grande",
			current: 50,
			total:   100,
			want:    []int{1, Ellipsis, 49, 50, 51, Ellipsis, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.current, tt.total))
		})
	}
}

func TestWindowNoDuplicates(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			seen := map[int]bool{}
			for _, p := range Window(current, total) {
				if p == Ellipsis {
					continue
				}
				assert.Falsef(t, seen[p], "página %d repetida con current=%d total=%d", p, current, total)
				assert.GreaterOrEqual(t, p, 1)
				assert.LessOrEqual(t, p, total)
				seen[p] = true
			}
		}
	}
}

func TestPages(t *testing.T) {
	assert.Equal(t, 0, Pages(0, 10))
	assert.Equal(t, 1, Pages(1, 10))
	assert.Equal(t, 1, Pages(10, 10))
	assert.Equal(t, 2, Pages(11, 10))
	assert.Equal(t, 10, Pages(100, 10))
	assert.Equal(t, 0, Pages(5, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 5))
	assert.Equal(t, 1, Clamp(-3, 5))
	assert.Equal(t, 5, Clamp(9, 5))
	assert.Equal(t, 3, Clamp(3, 5))
	assert.Equal(t, 1, Clamp(7, 0))
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Slice(items, 1, 3))
	assert.Equal(t, []int{4, 5, 6}, Slice(items, 2, 3))
	assert.Equal(t, []int{7}, Slice(items, 3, 3))
	assert.Nil(t, Slice(items, 4, 3))
	assert.Nil(t, Slice(items, 1, 0))
}

package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageIndex(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want [][]int
	}{
		{
			name: "empty",
			n:    0,
			want: [][]int{{}},
		},
		{
			name: "partial page",
			n:    3,
			want: [][]int{{0, 1, 2}},
		},
		{
			name: "exact multiple keeps empty remainder",
			n:    10,
			want: [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, {}},
		},
		{
			name: "two and a half pages",
			n:    25,
			want: [][]int{
				{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
				{10, 11, 12, 13, 14, 15, 16, 17, 18, 19},
				{20, 21, 22, 23, 24},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageIndex(tt.n))
		})
	}
}

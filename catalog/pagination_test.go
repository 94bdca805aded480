package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{0, 6, 1},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{5, 1, 5},
		{10, 0, 2}, // falls back to DefaultPageSize
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.size), "count=%d size=%d", tt.count, tt.size)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(-3, 4))
	assert.Equal(t, 1, ClampPage(0, 4))
	assert.Equal(t, 3, ClampPage(3, 4))
	assert.Equal(t, 4, ClampPage(9, 4))
	assert.Equal(t, 1, ClampPage(2, 0))
}

func TestPaginate_SliceLengths(t *testing.T) {
	for size := 1; size <= 7; size++ {
		for count := 0; count <= 20; count++ {
			items := make([]int, count)
			for i := range items {
				items[i] = i
			}
			total := TotalPages(count, size)
			for page := 1; page <= total; page++ {
				got := Paginate(items, page, size)
				want := min(size, count-(page-1)*size)
				if count == 0 {
					want = 0
				}
				assert.Len(t, got, want, "count=%d size=%d page=%d", count, size, page)
				if len(got) > 0 {
					assert.Equal(t, (page-1)*size, got[0])
				}
			}
		}
	}
}

func TestPaginate_BeyondContent(t *testing.T) {
	got := Paginate([]int{1, 2, 3}, 5, 2)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

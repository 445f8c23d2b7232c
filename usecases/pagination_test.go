package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 19)
	for i := range items {
		items[i] = i + 1
	}

	p := Paginate(items, 1, 8)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, p.Items)
	assert.Equal(t, 3, p.TotalPages)
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, []int{1, 2, 3}, p.PageNumbers())

	p = Paginate(items, 3, 8)
	assert.Equal(t, []int{17, 18, 19}, p.Items)
	assert.False(t, p.HasNext())
	assert.Equal(t, 2, p.Prev())
	assert.Equal(t, 3, p.Next())

	p = Paginate(items, 99, 8)
	assert.Equal(t, 3, p.Page)
	p = Paginate(items, -1, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]string(nil), 2, 8)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Empty(t, p.PageNumbers())
	assert.Equal(t, 1, p.Next())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "500", FormatAmount(500))
	assert.Equal(t, "1250.5", FormatAmount(1250.5))
}

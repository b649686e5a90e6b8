package helpers

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	p := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, p.Items)
	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.Page)

	last := Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, last.Items)

	past := Paginate(items, 9, 2)
	assert.Empty(t, past.Items)
	assert.Equal(t, 5, past.Total)
}

func TestPaginateHugePage(t *testing.T) {
	var p dto.Page[int]
	require.NotPanics(t, func() { p = Paginate([]int{1, 2, 3}, math.MaxInt, 20) })
	assert.Empty(t, p.Items)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, math.MaxInt, p.Page)

	start, end := sliceIndices(math.MaxInt/2, MaxPageSize, 10)
	assert.Equal(t, 10, start)
	assert.Equal(t, 10, end)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, totalPages(0, 20))
	assert.Equal(t, 2, totalPages(40, 20))
	assert.Equal(t, 3, totalPages(41, 20))
	assert.Equal(t, 1, totalPages(5, 0))
}

func TestPaginateDefaults(t *testing.T) {
	p := Paginate([]string{}, 0, 0)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)
	assert.NotNil(t, p.Items)

	_, size := NormalizePage(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, size)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDuration("3s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("-5s", time.Minute))
	assert.Equal(t, time.Duration(0), ParseDuration("0s", time.Minute))
	assert.Equal(t, 250*time.Millisecond, ParseDuration(" 250ms ", time.Minute))
}

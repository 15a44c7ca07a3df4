package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{PageIndex: 1, PageSize: 20}, NewPagination(20))
	assert.Equal(t, Pagination{PageIndex: 1, PageSize: DefaultPageSize}, NewPagination(0))
	assert.Equal(t, Pagination{PageIndex: 1, PageSize: DefaultPageSize}, NewPagination(33))
}

func TestPagination_WithPage(t *testing.T) {
	p := NewPagination(20).WithTotal(100)

	assert.Equal(t, 3, p.WithPage(3).PageIndex)
	assert.Equal(t, 20, p.WithPage(3).PageSize, "page size is kept")
	assert.Equal(t, 1, p.WithPage(0).PageIndex)
	assert.Equal(t, 1, p.WithPage(-5).PageIndex)
}

func TestPagination_WithPageSize(t *testing.T) {
	p := NewPagination(10).WithPage(4)

	changed := p.WithPageSize(50)
	assert.Equal(t, 50, changed.PageSize)
	assert.Equal(t, 1, changed.PageIndex, "changing size rewinds to the first page")

	assert.Equal(t, p, p.WithPageSize(7), "unsupported sizes are ignored")
}

func TestPagination_WithTotal(t *testing.T) {
	assert.Equal(t, 42, NewPagination(10).WithTotal(42).Total)
	assert.Equal(t, 0, NewPagination(10).WithTotal(-1).Total)
}

func TestPagination_PageCount(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		total int
		want  int
	}{
		{name: "empty", size: 10, total: 0, want: 1},
		{name: "exact", size: 10, total: 30, want: 3},
		{name: "remainder", size: 20, total: 41, want: 3},
		{name: "single", size: 50, total: 1, want: 1},
		{name: "zero size", size: 0, total: 10, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{PageIndex: 1, PageSize: tt.size, Total: tt.total}
			assert.Equal(t, tt.want, p.PageCount())
		})
	}
}

func TestPagination_NextPageSize(t *testing.T) {
	assert.Equal(t, 20, NewPagination(10).NextPageSize(1))
	assert.Equal(t, 10, NewPagination(50).NextPageSize(1))
	assert.Equal(t, 50, NewPagination(10).NextPageSize(-1))
	assert.Equal(t, DefaultPageSize, Pagination{PageSize: 15}.NextPageSize(1))
}

func TestIsValidPageSize(t *testing.T) {
	for _, s := range PageSizes {
		assert.True(t, IsValidPageSize(s))
	}
	assert.False(t, IsValidPageSize(0))
	assert.False(t, IsValidPageSize(100))
}

package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		size       int
		total      int64
		wantNumber int
		wantSize   int
		wantPages  int
		wantOffset int
	}{
		{"empty listing", 1, 10, 0, 1, 10, 1, 0},
		{"first page", 1, 10, 25, 1, 10, 3, 0},
		{"last page", 3, 10, 25, 3, 10, 3, 20},
		{"page beyond end is clamped", 9, 10, 25, 3, 10, 3, 20},
		{"page below one is clamped", -2, 10, 25, 1, 10, 3, 0},
		{"size zero falls back to default", 1, 0, 30, 1, DefaultPageSize, 2, 0},
		{"size above max falls back to default", 1, 1000, 30, 1, DefaultPageSize, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.number, tt.size, tt.total)

			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantSize, p.Size)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantOffset, p.Offset())
			assert.Equal(t, tt.total, p.TotalItems)
		})
	}
}

func TestNavigation(t *testing.T) {
	p := New(2, 10, 35)

	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 1, p.Prev())
	assert.Equal(t, 3, p.Next())

	last := New(4, 10, 35)
	assert.False(t, last.HasNext())
}

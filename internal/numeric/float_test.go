package numeric

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPanicsOnNaN(t *testing.T) {
	assert.Panics(t, func() { New(math.NaN()) })
	assert.NotPanics(t, func() { New(math.Inf(1)) })
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want int
	}{
		{name: "less", a: 0.1, b: 0.2, want: -1},
		{name: "equal", a: 3, b: 3, want: 0},
		{name: "greater", a: 2, b: -2, want: 1},
		{name: "infinity", a: math.Inf(1), b: math.MaxFloat64, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, tt.want, New(tt.a).Compare(New(tt.b)))
		})
	}
}

func TestSortFunc(t *testing.T) {
	values := []float64{3, 1, 2, 0.5}
	slices.SortFunc(values, Compare)
	assert.Equal(t, []float64{0.5, 1, 2, 3}, values)
}

func TestMaxIndex(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{name: "first maximum wins", values: []float64{1, 5, 0, 5, 0}, want: 1},
		{name: "single", values: []float64{-3}, want: 0},
		{name: "all equal", values: []float64{2, 2, 2}, want: 0},
		{name: "empty", values: nil, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxIndex(tt.values))
		})
	}

	assert.Panics(t, func() { MaxIndex([]float64{1, math.NaN()}) })
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceRangeOf(t *testing.T) {
	tests := []struct {
		price float64
		want  PriceRange
	}{
		{price: 0, want: PriceRangeUpTo100},
		{price: 99.99, want: PriceRangeUpTo100},
		{price: 100, want: PriceRangeUpTo100},
		{price: 100.5, want: PriceRangeUpTo500},
		{price: 101, want: PriceRangeUpTo500},
		{price: 500, want: PriceRangeUpTo500},
		{price: 500.01, want: PriceRangeUpTo1000},
		{price: 1000, want: PriceRangeUpTo1000},
		{price: 1000.01, want: PriceRangeAbove1000},
		{price: 25000, want: PriceRangeAbove1000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceRangeOf(tt.price), "price %v", tt.price)
	}
}

func TestGroupByPriceRange_AllBucketsPresent(t *testing.T) {
	grouped := GroupByPriceRange(nil)

	assert.Len(t, grouped, len(PriceRanges))
	for _, r := range PriceRanges {
		assert.NotNil(t, grouped[r])
		assert.Empty(t, grouped[r])
	}
}

func TestGroupByPriceRange_KeepsOrderWithinBucket(t *testing.T) {
	cheap := &Product{ProductName: "pen", Price: 5}
	boundary := &Product{ProductName: "lamp", Price: 100}
	mid := &Product{ProductName: "chair", Price: 101}
	top := &Product{ProductName: "sofa", Price: 1500}

	grouped := GroupByPriceRange([]*Product{cheap, mid, boundary, top})

	assert.Equal(t, []*Product{cheap, boundary}, grouped[PriceRangeUpTo100])
	assert.Equal(t, []*Product{mid}, grouped[PriceRangeUpTo500])
	assert.Empty(t, grouped[PriceRangeUpTo1000])
	assert.Equal(t, []*Product{top}, grouped[PriceRangeAbove1000])
}

package entity

// PriceRange labels a price bucket.
type PriceRange string

const (
	PriceRangeUpTo100   PriceRange = "0-100"
	PriceRangeUpTo500   PriceRange = "101-500"
	PriceRangeUpTo1000  PriceRange = "501-1000"
	PriceRangeAbove1000 PriceRange = "1000+"
)

// PriceRanges lists every bucket in ascending order.
var PriceRanges = []PriceRange{
	PriceRangeUpTo100,
	PriceRangeUpTo500,
	PriceRangeUpTo1000,
	PriceRangeAbove1000,
}

// PriceRangeOf returns the bucket holding price.
// Upper bounds are inclusive, so 100 is in "0-100" and 100.5 is in "101-500".
func PriceRangeOf(price float64) PriceRange {
	switch {
	case price <= 100:
		return PriceRangeUpTo100
	case price <= 500:
		return PriceRangeUpTo500
	case price <= 1000:
		return PriceRangeUpTo1000
	default:
		return PriceRangeAbove1000
	}
}

// GroupByPriceRange buckets products by price. Every label is present in the result,
// possibly with an empty slice, and input order is kept inside each bucket.
func GroupByPriceRange(products []*Product) map[PriceRange][]*Product {
	grouped := make(map[PriceRange][]*Product, len(PriceRanges))
	for _, r := range PriceRanges {
		grouped[r] = []*Product{}
	}

	for _, p := range products {
		r := PriceRangeOf(p.Price)
		grouped[r] = append(grouped[r], p)
	}

	return grouped
}

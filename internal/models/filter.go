package models

// Sort criteria accepted by the catalog filter pipeline.
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// PriceRange is an inclusive price window in MGA subunits.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FilterOptions describes one pass of the catalog filter pipeline.
// An empty category set means "no category filter", not "match none".
type FilterOptions struct {
	Categories []string   `json:"categories"`
	PriceRange PriceRange `json:"price_range"`
	SortBy     string     `json:"sort_by"`
	TopSellers bool       `json:"top_sellers"`
}

// DefaultFilters returns the neutral filter state: all categories, the
// full price window, relevance ordering, top sellers off.
func DefaultFilters() FilterOptions {
	return FilterOptions{
		Categories: nil,
		PriceRange: PriceRange{Min: 0, Max: 1_000_000},
		SortBy:     SortRelevance,
		TopSellers: false,
	}
}

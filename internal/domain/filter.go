package domain

type SortBy string

const (
	SortFeatured  SortBy = "featured"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortRating    SortBy = "rating"
	SortDeals     SortBy = "deals"
)

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions are ANDed together. Brands takes precedence over Brand.
type FilterOptions struct {
	Category   string      `json:"category,omitempty"`
	Brand      string      `json:"brand,omitempty"`
	Brands     []string    `json:"brands,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	SearchTerm string      `json:"searchTerm,omitempty"`
	SortBy     SortBy      `json:"sortBy,omitempty"`
}

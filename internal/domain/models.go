package domain

// Product is a catalog record. Prices are canonical USD.
type Product struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	FullDescription  string            `json:"fullDescription,omitempty"`
	Category         string            `json:"category"`
	Brand            string            `json:"brand"`
	Price            float64           `json:"price"`
	OriginalPrice    float64           `json:"originalPrice,omitempty"`
	Rating           float64           `json:"rating"`
	Reviews          int               `json:"reviews"`
	Image            string            `json:"image"`
	AdditionalImages []string          `json:"additionalImages,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
	Badge            string            `json:"badge,omitempty"`
	SKU              string            `json:"sku"`
	Warranty         string            `json:"warranty,omitempty"`
	InStock          bool              `json:"inStock"`
	Featured         bool              `json:"featured,omitempty"`
	New              bool              `json:"new,omitempty"`
	Discount         float64           `json:"discount,omitempty"`
}

// Clone returns a deep copy so cart and wishlist snapshots never share
// slices or maps with the catalog.
func (p Product) Clone() Product {
	out := p
	if p.AdditionalImages != nil {
		out.AdditionalImages = append([]string(nil), p.AdditionalImages...)
	}
	if p.Specifications != nil {
		out.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			out.Specifications[k] = v
		}
	}
	return out
}

// CartEntry is a product snapshot plus a quantity (always >= 1 once stored).
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type CatalogStats struct {
	Products       int     `json:"products"`
	InStock        int     `json:"inStock"`
	Discounted     int     `json:"discounted"`
	AverageRating  float64 `json:"averageRating"`
	InventoryValue float64 `json:"inventoryValue"`
}

// Package catalog holds the pure query functions run over a product list.
// None of them mutate their input; every result is a fresh slice.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"hwstore/internal/domain"
)

// MinQueryLen is the shortest search term worth running. Shorter input is
// expected to be short-circuited by the caller.
const MinQueryLen = 2

const DefaultSimilarLimit = 4

func where(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Search matches q case-insensitively against name, description and
// category. An empty q matches everything.
func Search(products []domain.Product, q string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	return where(products, func(p domain.Product) bool { return matches(p, q) })
}

// Filter applies every provided criterion (AND) and then sorts.
func Filter(products []domain.Product, opts domain.FilterOptions) []domain.Product {
	category := strings.TrimSpace(opts.Category)
	brands := make([]string, 0, len(opts.Brands))
	for _, b := range opts.Brands {
		if b = strings.TrimSpace(b); b != "" {
			brands = append(brands, b)
		}
	}
	if len(brands) == 0 {
		if b := strings.TrimSpace(opts.Brand); b != "" {
			brands = append(brands, b)
		}
	}
	term := strings.ToLower(strings.TrimSpace(opts.SearchTerm))

	out := where(products, func(p domain.Product) bool {
		if category != "" && !strings.EqualFold(p.Category, category) {
			return false
		}
		if len(brands) > 0 && !slices.ContainsFunc(brands, func(b string) bool { return strings.EqualFold(p.Brand, b) }) {
			return false
		}
		if r := opts.PriceRange; r != nil && (p.Price < r.Min || p.Price > r.Max) {
			return false
		}
		if term != "" && !matches(p, term) {
			return false
		}
		return true
	})
	return Sort(out, opts.SortBy)
}

// Sort orders a copy of products. SortDeals also drops items without a
// discount. Unknown modes fall back to SortFeatured.
func Sort(products []domain.Product, by domain.SortBy) []domain.Product {
	out := slices.Clone(products)
	switch by {
	case domain.SortPriceLow:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) })
	case domain.SortPriceHigh:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) })
	case domain.SortRating:
		slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	case domain.SortDeals:
		out = Discounted(out)
	default:
		slices.SortStableFunc(out, func(a, b domain.Product) int {
			switch {
			case a.Featured == b.Featured:
				return 0
			case a.Featured:
				return -1
			default:
				return 1
			}
		})
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out
}

func Featured(products []domain.Product) []domain.Product {
	return where(products, func(p domain.Product) bool { return p.Featured })
}

func NewArrivals(products []domain.Product) []domain.Product {
	return where(products, func(p domain.Product) bool { return p.New })
}

// Discounted keeps items with a discount and orders them by discount,
// largest first. Ties keep catalog order.
func Discounted(products []domain.Product) []domain.Product {
	out := where(products, func(p domain.Product) bool { return p.Discount > 0 })
	slices.SortStableFunc(out, func(a, b domain.Product) int { return cmp.Compare(b.Discount, a.Discount) })
	return out
}

// Similar returns up to limit products of the same category, excluding id,
// in catalog order.
func Similar(products []domain.Product, id int, category string, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	out := make([]domain.Product, 0, min(limit, len(products)))
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.ID != id && strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns distinct category labels in first-seen order.
func Categories(products []domain.Product) []string {
	return distinct(products, func(p domain.Product) string { return p.Category })
}

// Brands returns distinct brand labels in first-seen order.
func Brands(products []domain.Product) []string {
	return distinct(products, func(p domain.Product) string { return p.Brand })
}

func distinct(products []domain.Product, key func(domain.Product) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		k := key(p)
		lk := strings.ToLower(k)
		if k == "" || seen[lk] {
			continue
		}
		seen[lk] = true
		out = append(out, k)
	}
	return out
}

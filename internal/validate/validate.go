package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"hwstore/internal/domain"
)

var (
	reQ   = regexp.MustCompile(`^[\p{L}0-9 _'.+\-/]{1,50}$`)
	reSKU = regexp.MustCompile(`^[A-Za-z0-9_-]{1,40}$`)
)

// MaxQty caps a single cart line.
const MaxQty = 99

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if utf8.RuneCountInString(s) > 50 {
		s = string([]rune(s)[:50])
	}
	return s, reQ.MatchString(s)
}

// Qty parses a quantity, clamping to [1, MaxQty].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return min(n, MaxQty)
}

// ID parses a positive product id.
func ID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n > 0
}

// Product checks every required field of a product record and returns a
// field -> message map; an empty map means the record is valid. When
// requireID is false the id is not checked (new products get one assigned).
func Product(p domain.Product, requireID bool) map[string]string {
	errs := map[string]string{}
	if requireID && p.ID <= 0 {
		errs["id"] = "id must be a positive number"
	}
	required := map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"category":    p.Category,
		"brand":       p.Brand,
		"image":       p.Image,
		"sku":         p.SKU,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			errs[field] = field + " is required"
		}
	}
	if _, bad := errs["sku"]; !bad && !reSKU.MatchString(p.SKU) {
		errs["sku"] = "sku may contain letters, digits, '-' and '_' only"
	}
	if p.Price < 0 {
		errs["price"] = "price must not be negative"
	}
	if p.OriginalPrice < 0 {
		errs["originalPrice"] = "original price must not be negative"
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	if p.Reviews < 0 {
		errs["reviews"] = "reviews must not be negative"
	}
	if p.Discount < 0 || p.Discount > 100 {
		errs["discount"] = "discount must be between 0 and 100"
	}
	return errs
}

// Catalog validates every record and the uniqueness of ids and SKUs.
// It returns the first problem found, or nil.
func Catalog(products []domain.Product) error {
	ids := map[int]bool{}
	skus := map[string]bool{}
	for i, p := range products {
		if errs := Product(p, true); len(errs) > 0 {
			for field, msg := range errs {
				return fmt.Errorf("product %d (index %d): %s: %s", p.ID, i, field, msg)
			}
		}
		if ids[p.ID] {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		ids[p.ID] = true
		sku := strings.ToLower(p.SKU)
		if skus[sku] {
			return fmt.Errorf("duplicate sku %q", p.SKU)
		}
		skus[sku] = true
	}
	return nil
}

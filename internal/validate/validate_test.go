package validate_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"hwstore/internal/catalog"
	"hwstore/internal/domain"
	"hwstore/internal/validate"
)

func validProduct() domain.Product {
	return domain.Product{
		ID: 1, Name: "Arc A770", Description: "16GB GPU", Category: "GPUs", Brand: "Intel",
		Price: 279, Rating: 4.2, Reviews: 10, Image: "/a770.jpg", SKU: "GPU-INT-A770",
	}
}

func TestProductValid(t *testing.T) {
	assert.Empty(t, validate.Product(validProduct(), true))
}

func TestProductFieldErrors(t *testing.T) {
	p := validProduct()
	p.ID = 0
	p.Brand = "  "
	p.Price = -1
	p.Rating = 6
	p.Discount = 120
	p.SKU = "bad sku!"

	errs := validate.Product(p, true)
	assert.Contains(t, errs, "id")
	assert.Contains(t, errs, "brand")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "rating")
	assert.Contains(t, errs, "discount")
	assert.Contains(t, errs, "sku")

	assert.NotContains(t, validate.Product(p, false), "id")
}

func TestCatalog(t *testing.T) {
	assert.NoError(t, validate.Catalog(catalog.Seed()))

	dup := []domain.Product{validProduct(), validProduct()}
	assert.Error(t, validate.Catalog(dup))

	noBrand := validProduct()
	noBrand.Brand = ""
	assert.Error(t, validate.Catalog([]domain.Product{noBrand}))
}

func TestQtyAndID(t *testing.T) {
	assert.Equal(t, 1, validate.Qty("abc"))
	assert.Equal(t, 1, validate.Qty("-3"))
	assert.Equal(t, 7, validate.Qty(" 7 "))
	assert.Equal(t, validate.MaxQty, validate.Qty("5000"))

	id, ok := validate.ID("12")
	assert.True(t, ok)
	assert.Equal(t, 12, id)
	_, ok = validate.ID("0")
	assert.False(t, ok)
	_, ok = validate.ID("x")
	assert.False(t, ok)
}

func TestQ(t *testing.T) {
	q, ok := validate.Q("  rtx 4070 ")
	assert.True(t, ok)
	assert.Equal(t, "rtx 4070", q)

	_, ok = validate.Q("<script>")
	assert.False(t, ok)
	_, ok = validate.Q("")
	assert.False(t, ok)
}

func TestQTruncatesByRune(t *testing.T) {
	q, ok := validate.Q(strings.Repeat("显", 51))
	assert.True(t, ok)
	assert.Equal(t, 50, utf8.RuneCountInString(q))
	assert.True(t, utf8.ValidString(q))

	q, ok = validate.Q(strings.Repeat("видеокарта ", 6))
	assert.True(t, ok)
	assert.Equal(t, 50, utf8.RuneCountInString(q))
}

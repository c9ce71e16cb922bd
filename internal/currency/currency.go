// Package currency converts canonical USD prices for display. Nothing here
// is persisted or written back into product data.
package currency

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// DefaultEURRate is the fixed USD to EUR rate used when none is configured.
const DefaultEURRate = 0.92

// Parse accepts a currency code in any case.
func Parse(s string) (Code, error) {
	switch c := Code(strings.ToUpper(strings.TrimSpace(s))); c {
	case USD, EUR:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
	}
}

// Converter holds the process-wide display currency. Zero value is not
// usable; build one with NewConverter.
type Converter struct {
	rate decimal.Decimal

	mu       sync.RWMutex
	selected Code
}

func NewConverter(eurRate float64) *Converter {
	if eurRate <= 0 {
		eurRate = DefaultEURRate
	}
	return &Converter{rate: decimal.NewFromFloat(eurRate), selected: USD}
}

func (c *Converter) Currency() Code {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected
}

func (c *Converter) SetCurrency(code Code) error {
	if _, err := Parse(string(code)); err != nil {
		return err
	}
	c.mu.Lock()
	c.selected = Code(strings.ToUpper(string(code)))
	c.mu.Unlock()
	return nil
}

func (c *Converter) Rate() float64 {
	f, _ := c.rate.Float64()
	return f
}

// Convert maps a canonical price to the selected currency without rounding.
func (c *Converter) Convert(price float64) float64 {
	f, _ := c.convert(price).Float64()
	return f
}

func (c *Converter) convert(price float64) decimal.Decimal {
	d := decimal.NewFromFloat(price)
	if c.Currency() == EUR {
		return d.Mul(c.rate)
	}
	return d
}

// Format converts and renders with two decimals: "$12.50" or "11.50 €".
func (c *Converter) Format(price float64) string {
	amount := c.convert(price).StringFixed(2)
	if c.Currency() == EUR {
		return amount + " €"
	}
	return "$" + amount
}

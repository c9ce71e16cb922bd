package services

import "github.com/shopspring/decimal"

func roundCents(f float64) float64 {
	out, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return out
}

package pricing

import (
	"github.com/shopspring/decimal"
)

// TaxRate is the flat sales tax applied to the order subtotal.
const TaxRate = 0.08

// DefaultDeliveryFee is charged when the order does not match an active
// delivery area. Areas carry their own fee which takes precedence.
const DefaultDeliveryFee = 3.99

// Size multipliers scale a pizza's base price for the chosen size tier.
var sizeMultipliers = map[string]float64{
	"Small":       0.8,
	"Medium":      1.0,
	"Large":       1.3,
	"Extra Large": 1.6,
}

// Extra topping prices. An unknown extra contributes nothing to the price.
var extraPrices = map[string]float64{
	"Extra Cheese": 2.99,
	"Pepperoni":    3.49,
	"Mushrooms":    2.49,
	"Bell Peppers": 2.49,
	"Olives":       2.99,
	"Onions":       1.99,
	"Jalapeños":    2.49,
	"Bacon":        3.99,
}

// SizeMultiplier returns the multiplier for a size label. Unknown sizes fall
// back to Medium, matching the storefront's size picker default.
func SizeMultiplier(size string) float64 {
	if m, ok := sizeMultipliers[size]; ok {
		return m
	}
	return sizeMultipliers["Medium"]
}

// ExtraPrice returns the price of a single extra topping, 0 if unknown.
func ExtraPrice(name string) float64 {
	return extraPrices[name]
}

// UnitPrice computes the price of one pizza: base price scaled by the size
// multiplier plus the sum of the selected extras.
func UnitPrice(basePrice float64, size string, extras []string) float64 {
	price := decimal.NewFromFloat(basePrice).
		Mul(decimal.NewFromFloat(SizeMultiplier(size)))
	for _, extra := range extras {
		price = price.Add(decimal.NewFromFloat(ExtraPrice(extra)))
	}
	f, _ := price.Round(2).Float64()
	return f
}

// Line is the minimal shape the pricing engine needs to total an order.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Totals is a priced order breakdown. All values are rounded half-up to
// 2 decimals.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Quote totals an order: subtotal is the sum of line totals, tax is 8% of
// the subtotal, and the delivery fee is passed in by the caller (per-area
// fee, or DefaultDeliveryFee when no area applies).
func Quote(lines []Line, deliveryFee float64) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		lineTotal := decimal.NewFromFloat(line.UnitPrice).
			Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}
	subtotal = subtotal.Round(2)

	fee := decimal.NewFromFloat(deliveryFee)
	tax := subtotal.Mul(decimal.NewFromFloat(TaxRate)).Round(2)
	total := subtotal.Add(fee).Add(tax).Round(2)

	subF, _ := subtotal.Float64()
	feeF, _ := fee.Float64()
	taxF, _ := tax.Float64()
	totalF, _ := total.Float64()
	return Totals{
		Subtotal:    subF,
		DeliveryFee: feeF,
		Tax:         taxF,
		Total:       totalF,
	}
}

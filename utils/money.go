package utils

import (
	"aurora/models"

	"github.com/shopspring/decimal"
)

// ParseMoney parses a decimal price string.
func ParseMoney(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// FormatMoney renders d with exactly two decimals, the way prices are stored.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// SummarizeCart prices a cart for checkout. The discount is a fraction of the
// subtotal rounded to cents; the delivery fee applies only to non-empty carts.
// Lines whose product is gone or carries an unparsable price count as zero.
func SummarizeCart(lines []models.CartItemWithProduct, discountRate, deliveryFee decimal.Decimal) models.CartSummary {
	subtotal := decimal.Zero
	count := 0
	for _, line := range lines {
		count += line.Quantity
		if line.Product == nil {
			continue
		}
		price, err := ParseMoney(line.Product.Price)
		if err != nil {
			continue
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	discount := subtotal.Mul(discountRate).Round(2)
	fee := decimal.Zero
	if len(lines) > 0 {
		fee = deliveryFee
	}

	return models.CartSummary{
		ItemCount:   count,
		Subtotal:    FormatMoney(subtotal),
		Discount:    FormatMoney(discount),
		DeliveryFee: FormatMoney(fee),
		Total:       FormatMoney(subtotal.Sub(discount).Add(fee)),
	}
}

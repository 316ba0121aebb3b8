// Package pricing implements the cart arithmetic: subtotal, percentage
// discount, final total, and change due. All computation is integer
// arithmetic on whole-rupiah amounts; the only rounding is the floor in
// the discount step.
package pricing

import (
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
)

// Subtotal sums unit price x quantity over all cart lines.
func Subtotal(lines []entity.CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Total()
	}
	return sum
}

// Discount computes floor(subtotal * percent / 100). Negative percentages
// are treated as 0. There is deliberately no upper clamp: a percent above
// 100 drives the total negative, which checkout passes through unvalidated.
func Discount(subtotal, percent int64) int64 {
	if percent < 0 {
		percent = 0
	}
	return subtotal * percent / 100
}

// Total is the amount due after discount.
func Total(subtotal, discount int64) int64 {
	return subtotal - discount
}

// Change is the cash change due, clamped to 0 for display. Whether the
// payment actually covers the total is checkout's validation, not this
// clamp's.
func Change(total, received int64) int64 {
	if received < total {
		return 0
	}
	return received - total
}

// Snapshot computes the full derived pricing state for the given cart
// lines and inputs.
func Snapshot(lines []entity.CartLine, discountPercent, amountReceived int64) entity.PricingSnapshot {
	if discountPercent < 0 {
		discountPercent = 0
	}
	subtotal := Subtotal(lines)
	discount := Discount(subtotal, discountPercent)
	total := Total(subtotal, discount)
	return entity.PricingSnapshot{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		Total:           total,
		AmountReceived:  amountReceived,
		Change:          Change(total, amountReceived),
	}
}

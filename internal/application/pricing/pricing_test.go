package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
)

func line(name string, price int64, qty int) entity.CartLine {
	return entity.CartLine{ID: uuid.New(), ProductID: 1, Name: name, UnitPrice: price, Quantity: qty}
}

func TestSubtotal(t *testing.T) {
	assert.Equal(t, int64(0), Subtotal(nil))

	lines := []entity.CartLine{
		line("Kopi", 15000, 2),
		line("Teh", 5000, 3),
	}
	assert.Equal(t, int64(45000), Subtotal(lines))
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		percent  int64
		want     int64
	}{
		{"fifteen percent", 10000, 15, 1500},
		{"zero percent", 10000, 0, 0},
		{"negative percent treated as zero", 10000, -5, 0},
		{"floored", 999, 15, 149}, // 999*15/100 = 149.85
		{"full discount", 10000, 100, 10000},
		{"above hundred percent is not clamped", 10000, 150, 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Discount(tt.subtotal, tt.percent))
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(8500), Total(10000, 1500))

	// Oversized discount drives the total negative; passed through as-is.
	assert.Equal(t, int64(-5000), Total(10000, 15000))
}

func TestChange(t *testing.T) {
	assert.Equal(t, int64(1500), Change(8500, 10000))
	assert.Equal(t, int64(0), Change(8500, 8500))

	// Insufficient payment is clamped for display only.
	assert.Equal(t, int64(0), Change(8500, 5000))
}

func TestSnapshot(t *testing.T) {
	lines := []entity.CartLine{line("Kopi", 5000, 2)}

	snap := Snapshot(lines, 15, 10000)
	assert.Equal(t, int64(10000), snap.Subtotal)
	assert.Equal(t, int64(15), snap.DiscountPercent)
	assert.Equal(t, int64(1500), snap.DiscountAmount)
	assert.Equal(t, int64(8500), snap.Total)
	assert.Equal(t, int64(10000), snap.AmountReceived)
	assert.Equal(t, int64(1500), snap.Change)
}

func TestSnapshotEmptyCart(t *testing.T) {
	snap := Snapshot(nil, 10, 0)
	assert.Equal(t, entity.PricingSnapshot{DiscountPercent: 10}, snap)
}

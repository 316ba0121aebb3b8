package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/enum"
)

func TestDisplayStartsIdleWithIndonesianDate(t *testing.T) {
	display := NewDisplayService()
	display.now = func() time.Time { return time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC) } // a Monday
	display.ShowIdle()

	state := display.State()
	assert.Equal(t, entity.DisplayIdle, state.Mode)
	assert.Equal(t, "Senin, 6 Januari 2025", state.Date)
}

func TestDisplayShowOrder(t *testing.T) {
	display := NewDisplayService()

	lines := []entity.CartLine{
		{Name: "Kopi", UnitPrice: 15000, Quantity: 2},
	}
	display.ShowOrder(42, lines, 30000, enum.PaymentQRIS)

	state := display.State()
	assert.Equal(t, entity.DisplayOrder, state.Mode)
	assert.Equal(t, int64(42), state.TransactionID)
	require.Len(t, state.Items, 1)
	assert.Equal(t, int64(30000), state.Items[0].LineTotal)
	assert.Equal(t, "QRIS/E-WALLET", state.MethodLabel)
}

func TestDisplaySubscribeDeliversCurrentThenUpdates(t *testing.T) {
	display := NewDisplayService()

	id, ch := display.Subscribe()
	defer display.Unsubscribe(id)

	first := <-ch
	assert.Equal(t, entity.DisplayIdle, first.Mode)

	display.ShowOrder(1, nil, 5000, enum.PaymentCash)
	update := <-ch
	assert.Equal(t, entity.DisplayOrder, update.Mode)
	assert.Equal(t, "TUNAI", update.MethodLabel)
}

func TestDisplayCloseReleasesAllSubscribers(t *testing.T) {
	display := NewDisplayService()

	_, ch1 := display.Subscribe()
	_, ch2 := display.Subscribe()
	require.Equal(t, 2, display.SubscriberCount())

	display.Close()

	assert.Equal(t, 0, display.SubscriberCount())

	// Both channels are closed after draining the buffered state.
	drain := func(ch <-chan entity.DisplayState) bool {
		for range ch {
		}
		return true
	}
	assert.True(t, drain(ch1))
	assert.True(t, drain(ch2))

	assert.Equal(t, entity.DisplayIdle, display.State().Mode)
}

func TestDisplayUnsubscribeTwiceIsSafe(t *testing.T) {
	display := NewDisplayService()

	id, _ := display.Subscribe()
	display.Unsubscribe(id)
	display.Unsubscribe(id)

	assert.Equal(t, 0, display.SubscriberCount())
}

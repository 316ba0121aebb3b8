package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammadwafiq/smartkasir-kasir-app/internal/domain/entity"
)

type mapResolver map[int64]entity.Product

func (m mapResolver) FindByID(id int64) (*entity.Product, bool) {
	p, ok := m[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

func newTestCart() (*CartService, mapResolver) {
	resolver := mapResolver{
		1: {ID: 1, Name: "Kopi", Price: 15000, Category: "Minuman", Stock: 10},
		2: {ID: 2, Name: "Teh Botol", Price: 5000, Category: "Minuman", Stock: 8},
	}
	return NewCartService(resolver), resolver
}

func TestAddItemMergesSameProduct(t *testing.T) {
	cart, _ := newTestCart()

	first, err := cart.AddItem(1, 2)
	require.NoError(t, err)

	second, err := cart.AddItem(1, 3)
	require.NoError(t, err)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, first.ID, second.ID, "merge keeps the original line identity")
}

func TestAddItemSnapshotsPriceAtFirstAdd(t *testing.T) {
	cart, resolver := newTestCart()

	_, err := cart.AddItem(1, 2)
	require.NoError(t, err)

	// Catalog price changes in memory after the first add.
	resolver[1] = entity.Product{ID: 1, Name: "Kopi", Price: 99999, Stock: 10}

	_, err = cart.AddItem(1, 3)
	require.NoError(t, err)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(15000), lines[0].UnitPrice, "unit price is frozen at first add")
	assert.Equal(t, int64(75000), lines[0].Total())
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	cart, _ := newTestCart()

	line, err := cart.AddItem(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)

	line, err = cart.AddItem(2, -4)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	cart, _ := newTestCart()

	_, err := cart.AddItem(99, 1)
	assert.Error(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart, _ := newTestCart()

	first, err := cart.AddItem(1, 1)
	require.NoError(t, err)
	second, err := cart.AddItem(2, 1)
	require.NoError(t, err)

	require.NoError(t, cart.UpdateQuantity(first.ID, 0))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, second.ID, lines[0].ID, "later lines shift down")
}

func TestUpdateQuantity(t *testing.T) {
	cart, _ := newTestCart()

	line, err := cart.AddItem(1, 1)
	require.NoError(t, err)

	require.NoError(t, cart.UpdateQuantity(line.ID, 7))
	assert.Equal(t, 7, cart.Lines()[0].Quantity)

	err = cart.UpdateQuantity(uuid.New(), 3)
	assert.Error(t, err, "unknown line id")
}

func TestRemoveLine(t *testing.T) {
	cart, _ := newTestCart()

	line, err := cart.AddItem(1, 1)
	require.NoError(t, err)

	require.NoError(t, cart.RemoveLine(line.ID))
	assert.True(t, cart.IsEmpty())

	assert.Error(t, cart.RemoveLine(line.ID), "already removed")
}

func TestClear(t *testing.T) {
	cart, _ := newTestCart()

	_, err := cart.AddItem(1, 2)
	require.NoError(t, err)
	_, err = cart.AddItem(2, 1)
	require.NoError(t, err)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines())
}

func TestSubscribersNotifiedOncePerMutation(t *testing.T) {
	cart, _ := newTestCart()

	var notified int
	cart.Subscribe(func() { notified++ })

	line, err := cart.AddItem(1, 1)
	require.NoError(t, err)
	require.NoError(t, cart.UpdateQuantity(line.ID, 2))
	require.NoError(t, cart.RemoveLine(line.ID))
	cart.Clear()

	assert.Equal(t, 4, notified)
}

func TestLinesReturnsCopy(t *testing.T) {
	cart, _ := newTestCart()

	_, err := cart.AddItem(1, 1)
	require.NoError(t, err)

	lines := cart.Lines()
	lines[0].Quantity = 100

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

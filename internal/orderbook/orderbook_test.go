package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/models"
)

func TestOpen(t *testing.T) {
	b := New()

	order, err := b.Open(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "ORD1001", order.ID)
	assert.Equal(t, 2, order.TableNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Zero(t, order.Total)
	assert.Equal(t, 3, order.CustomerCount)

	second, err := b.Open(4, 1)
	require.NoError(t, err)
	assert.Equal(t, "ORD1002", second.ID)

	_, err = b.Open(2, 0)
	assert.ErrorIs(t, err, models.ErrInvalidValue)
}

func TestAddLine(t *testing.T) {
	b := New()
	order, err := b.Open(2, 2)
	require.NoError(t, err)

	updated, err := b.AddLine(order.ID, "MAIN001", 2, 29.99)
	require.NoError(t, err)
	assert.InDelta(t, 59.98, updated.Total, 1e-9)

	updated, err = b.AddLine(order.ID, "APP001", 1, 8.99)
	require.NoError(t, err)
	assert.InDelta(t, 68.97, updated.Total, 1e-9)
	require.Len(t, updated.Lines, 2)
	assert.Equal(t, models.OrderLine{ItemID: "MAIN001", Quantity: 2, UnitPrice: 29.99}, updated.Lines[0])

	_, err = b.AddLine(order.ID, "MAIN001", 0, 29.99)
	assert.ErrorIs(t, err, models.ErrInvalidValue)

	_, err = b.AddLine("ORD9999", "MAIN001", 1, 29.99)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// The total is built from the unit prices passed at add time; the book
// never looks at the catalog again.
func TestTotalUsesPriceSnapshots(t *testing.T) {
	b := New()
	order, err := b.Open(1, 1)
	require.NoError(t, err)

	_, err = b.AddLine(order.ID, "MAIN002", 1, 16.99)
	require.NoError(t, err)
	updated, err := b.AddLine(order.ID, "MAIN002", 1, 18.99)
	require.NoError(t, err)

	assert.InDelta(t, 35.98, updated.Total, 1e-9)
	assert.Equal(t, 16.99, updated.Lines[0].UnitPrice)
	assert.Equal(t, 18.99, updated.Lines[1].UnitPrice)
}

func TestSetStatus(t *testing.T) {
	b := New()
	order, err := b.Open(3, 2)
	require.NoError(t, err)

	previous, err := b.SetStatus(order.ID, "cooking")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, previous)

	// Transitions are unrestricted; only the value set is checked.
	previous, err = b.SetStatus(order.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCooking, previous)

	_, err = b.SetStatus(order.ID, "eaten")
	assert.ErrorIs(t, err, models.ErrInvalidValue)

	_, err = b.SetStatus("ORD9999", "cooking")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSetInstructions(t *testing.T) {
	b := New()
	order, err := b.Open(3, 2)
	require.NoError(t, err)

	require.NoError(t, b.SetInstructions(order.ID, "no onions"))
	found, err := b.Find(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "no onions", found.Instructions)

	assert.ErrorIs(t, b.SetInstructions("ORD9999", "x"), models.ErrNotFound)
}

func TestListActive(t *testing.T) {
	b := New()
	first, err := b.Open(1, 1)
	require.NoError(t, err)
	second, err := b.Open(2, 2)
	require.NoError(t, err)
	third, err := b.Open(3, 3)
	require.NoError(t, err)

	_, err = b.SetStatus(second.ID, "paid")
	require.NoError(t, err)

	active := b.ListActive()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, third.ID, active[1].ID)

	paid := b.ListPaid()
	require.Len(t, paid, 1)
	assert.Equal(t, second.ID, paid[0].ID)
}

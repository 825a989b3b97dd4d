package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, id string) *order.Order {
	t.Helper()
	item, err := order.NewLineItem("Dumplings", 120, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.MustNewOrderID(id), "guest", []order.LineItem{item})
	require.NoError(t, err)
	return o
}

func TestFulfiller_Fulfill(t *testing.T) {
	t.Run("should move selected order from pending to fulfilled", func(t *testing.T) {
		pending := order.NewList(newPendingOrder(t, "A1"), newPendingOrder(t, "A2"), newPendingOrder(t, "A3"))
		fulfilled := order.NewList(newPendingOrder(t, "Z0"))

		served, err := services.NewFulfiller().Fulfill(pending, fulfilled, 2)

		require.NoError(t, err)
		assert.Equal(t, "A2", served.ID().String())
		assert.Equal(t, order.Fulfilled, served.Status())

		assert.Equal(t, 2, pending.Len())
		assert.False(t, pending.Contains(kernel.MustNewOrderID("A2")))

		require.Equal(t, 2, fulfilled.Len())
		last, _ := fulfilled.At(1)
		assert.Same(t, served, last)
	})

	t.Run("should allow an id already present in the archive", func(t *testing.T) {
		pending := order.NewList(newPendingOrder(t, "A1"))
		fulfilled := order.NewList(newPendingOrder(t, "A1"))

		_, err := services.NewFulfiller().Fulfill(pending, fulfilled, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, fulfilled.Len())
		assert.True(t, pending.IsEmpty())
	})

	t.Run("should reject out of range selections without mutation", func(t *testing.T) {
		for _, selection := range []int{0, 3, -1} {
			pending := order.NewList(newPendingOrder(t, "A1"), newPendingOrder(t, "A2"))
			fulfilled := order.NewList()

			served, err := services.NewFulfiller().Fulfill(pending, fulfilled, selection)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, served)
			assert.Equal(t, 2, pending.Len())
			assert.True(t, fulfilled.IsEmpty())
		}
	})

	t.Run("should reject any selection on empty pending list", func(t *testing.T) {
		_, err := services.NewFulfiller().Fulfill(order.NewList(), order.NewList(), 1)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should not move an order that is already fulfilled", func(t *testing.T) {
		o := newPendingOrder(t, "A1")
		require.NoError(t, o.Fulfill())
		pending := order.NewList(o)
		fulfilled := order.NewList()

		_, err := services.NewFulfiller().Fulfill(pending, fulfilled, 1)

		require.Error(t, err)
		assert.Equal(t, 1, pending.Len())
		assert.True(t, fulfilled.IsEmpty())
	})

	t.Run("should leave a rejected order in place with its status", func(t *testing.T) {
		served := newPendingOrder(t, "A1")
		require.NoError(t, served.Fulfill())
		next := newPendingOrder(t, "A2")
		pending := order.NewList(served, next)
		fulfilled := order.NewList()

		_, err := services.NewFulfiller().Fulfill(pending, fulfilled, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		first, _ := pending.At(0)
		assert.Same(t, served, first)
		assert.Equal(t, order.Fulfilled, served.Status())
		assert.Equal(t, order.Pending, next.Status())
		assert.True(t, fulfilled.IsEmpty())
	})

	t.Run("should not touch either list for an order that was never constructed", func(t *testing.T) {
		pending := order.NewList(&order.Order{})
		fulfilled := order.NewList()

		_, err := services.NewFulfiller().Fulfill(pending, fulfilled, 1)

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.Equal(t, 1, pending.Len())
		assert.True(t, fulfilled.IsEmpty())
	})
}

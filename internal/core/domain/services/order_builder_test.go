package services_test

import (
	"errors"
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, price string, stock int) *product.Product {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "Product "+price, "", m, stock, "General")
	require.NoError(t, err)
	return p
}

func TestRequestedProductIDs(t *testing.T) {
	p1, p2 := kernel.NewUUID(), kernel.NewUUID()

	ids := services.RequestedProductIDs([]services.OrderLine{
		{ProductID: p1, Quantity: 1},
		{ProductID: p2, Quantity: 1},
		{ProductID: p1, Quantity: 3},
	})

	assert.Equal(t, []kernel.UUID{p1, p2}, ids)
}

func TestOrderBuilder_Build(t *testing.T) {
	builder := services.NewOrderBuilder()
	customerID := kernel.NewUUID()

	t.Run("should snapshot prices, sum total and decrement stock", func(t *testing.T) {
		p1 := newProduct(t, "10.00", 10)
		p2 := newProduct(t, "5.00", 3)
		before := time.Now().UTC().Truncate(time.Microsecond)

		o, err := builder.Build(kernel.NewUUID(), customerID, "1 Main St", "", []services.OrderLine{
			{ProductID: p1.ID(), Quantity: 2},
			{ProductID: p2.ID(), Quantity: 1},
		}, []*product.Product{p1, p2})

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.OrderDate().Before(before))
		assert.Equal(t, "25.00", o.TotalAmount().String())
		require.Len(t, o.Items(), 2)
		assert.True(t, o.Items()[0].ProductID().IsEqual(p1.ID()))
		assert.Equal(t, "10.00", o.Items()[0].UnitPrice().String())
		assert.Equal(t, 2, o.Items()[0].Quantity())
		assert.Equal(t, "5.00", o.Items()[1].UnitPrice().String())
		assert.Equal(t, 8, p1.Stock())
		assert.Equal(t, 2, p2.Stock())
	})

	t.Run("should name every missing product and leave stock untouched", func(t *testing.T) {
		p1 := newProduct(t, "10.00", 10)
		missing1, missing2 := kernel.NewUUID(), kernel.NewUUID()

		o, err := builder.Build(kernel.NewUUID(), customerID, "1 Main St", "", []services.OrderLine{
			{ProductID: p1.ID(), Quantity: 1},
			{ProductID: missing1, Quantity: 1},
			{ProductID: missing2, Quantity: 1},
		}, []*product.Product{p1})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
		assert.Contains(t, err.Error(), missing1.String())
		assert.Contains(t, err.Error(), missing2.String())
		assert.NotContains(t, err.Error(), p1.ID().String())
		assert.Equal(t, 10, p1.Stock())
	})

	t.Run("should treat inactive products as missing", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("1.00")
		inactive, err := product.RestoreProduct(kernel.NewUUID(), "Old", "", price, 5, "General", false)
		require.NoError(t, err)

		_, err = builder.Build(kernel.NewUUID(), customerID, "1 Main St", "", []services.OrderLine{
			{ProductID: inactive.ID(), Quantity: 1},
		}, []*product.Product{inactive})

		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
		assert.Equal(t, 5, inactive.Stock())
	})

	t.Run("should sum duplicate lines before checking stock", func(t *testing.T) {
		p1 := newProduct(t, "2.00", 4)
		p2 := newProduct(t, "3.00", 10)

		_, err := builder.Build(kernel.NewUUID(), customerID, "1 Main St", "", []services.OrderLine{
			{ProductID: p2.ID(), Quantity: 1},
			{ProductID: p1.ID(), Quantity: 3},
			{ProductID: p1.ID(), Quantity: 2},
		}, []*product.Product{p1, p2})

		require.Error(t, err)
		var stockErr *product.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.True(t, stockErr.ProductID.IsEqual(p1.ID()))
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 4, stockErr.Available)
		assert.Equal(t, 4, p1.Stock())
		assert.Equal(t, 10, p2.Stock())
	})

	t.Run("should keep duplicate lines as separate items", func(t *testing.T) {
		p1 := newProduct(t, "2.00", 10)

		o, err := builder.Build(kernel.NewUUID(), customerID, "1 Main St", "", []services.OrderLine{
			{ProductID: p1.ID(), Quantity: 3},
			{ProductID: p1.ID(), Quantity: 2},
		}, []*product.Product{p1})

		require.NoError(t, err)
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "10.00", o.TotalAmount().String())
		assert.Equal(t, 5, p1.Stock())
	})

	t.Run("should allow ordering the entire stock", func(t *testing.T) {
		p1 := newProduct(t, "2.00", 3)

		_, err := builder.Build(kernel.NewUUID(), customerID, "1 Main St", "", []services.OrderLine{
			{ProductID: p1.ID(), Quantity: 3},
		}, []*product.Product{p1})

		require.NoError(t, err)
		assert.Equal(t, 0, p1.Stock())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := builder.Build(kernel.NewUUID(), customerID, "1 Main St", "", nil, nil)

		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should reject blank address without touching stock", func(t *testing.T) {
		p1 := newProduct(t, "2.00", 3)

		_, err := builder.Build(kernel.NewUUID(), customerID, "", "", []services.OrderLine{
			{ProductID: p1.ID(), Quantity: 1},
		}, []*product.Product{p1})

		require.Error(t, err)
		assert.True(t, errs.IsInvalidInput(err))
		assert.Equal(t, 3, p1.Stock())
	})

	t.Run("should not follow later price changes", func(t *testing.T) {
		p1 := newProduct(t, "10.00", 3)
		o, err := builder.Build(kernel.NewUUID(), customerID, "1 Main St", "", []services.OrderLine{
			{ProductID: p1.ID(), Quantity: 1},
		}, []*product.Product{p1})
		require.NoError(t, err)

		newPrice, _ := kernel.MoneyFromString("99.00")
		repriced, err := product.RestoreProduct(p1.ID(), p1.Name(), "", newPrice, p1.Stock(), p1.Category(), true)
		require.NoError(t, err)

		assert.Equal(t, "99.00", repriced.Price().String())
		assert.Equal(t, "10.00", o.Items()[0].UnitPrice().String())
		assert.Equal(t, "10.00", o.TotalAmount().String())
	})
}

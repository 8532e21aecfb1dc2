package aggregate

import (
	"testing"

	"github.com/merchview/merchview/internal/dashboard/model"
	"github.com/merchview/merchview/pkg/storeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueTotals(t *testing.T) {
	carts := []storeapi.Cart{
		{Total: 100, DiscountedTotal: 90},
		{Total: 50, DiscountedTotal: 45},
	}

	totalSales, totalGross, totalDiscountCash := RevenueTotals(carts)

	assert.InDelta(t, 135, totalSales, 1e-9)
	assert.InDelta(t, 150, totalGross, 1e-9)
	assert.InDelta(t, 15, totalDiscountCash, 1e-9)
}

func TestRevenueTotalsEmpty(t *testing.T) {
	totalSales, totalGross, totalDiscountCash := RevenueTotals(nil)
	assert.Zero(t, totalSales)
	assert.Zero(t, totalGross)
	assert.Zero(t, totalDiscountCash)
}

func TestUsersWithOrders(t *testing.T) {
	carts := []storeapi.Cart{
		{ID: 1, UserID: 5},
		{ID: 2, UserID: 9},
		{ID: 3, UserID: 5},
	}
	assert.Equal(t, 2, UsersWithOrders(carts))
	assert.Equal(t, 0, UsersWithOrders(nil))
}

func TestProductsSold(t *testing.T) {
	carts := []storeapi.Cart{
		{TotalQuantity: 3},
		{TotalQuantity: 7},
	}
	assert.Equal(t, 10, ProductsSold(carts))
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	products := []storeapi.Product{
		{Category: "beauty"},
		{Category: "laptops"},
		{Category: "beauty"},
		{Category: "groceries"},
	}
	assert.Equal(t, []string{"beauty", "laptops", "groceries"}, Categories(products))
}

func TestAllStatusesFirstSeenOrder(t *testing.T) {
	carts := []model.EnrichedCart{
		{Status: "Processing"},
		{Status: "Shipped"},
		{Status: "Processing"},
		{Status: "Delivered"},
	}
	assert.Equal(t, []string{"Processing", "Shipped", "Delivered"}, AllStatuses(carts))
}

func TestCategoryStats(t *testing.T) {
	products := []storeapi.Product{
		{Category: "beauty", DiscountPercentage: 10.5, Thumbnail: "beauty-1.png"},
		{Category: "laptops", DiscountPercentage: 5.0, Thumbnail: "laptop-1.png"},
		{Category: "beauty", DiscountPercentage: 14.5, Thumbnail: "beauty-2.png"},
	}
	categories := Categories(products)

	stats := CategoryStats(products, categories)
	require.Len(t, stats, 2)

	assert.Equal(t, "beauty", stats[0].Name)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 13, stats[0].AvgDiscount)
	assert.Equal(t, "beauty-1.png", stats[0].FeaturedImage)

	assert.Equal(t, "laptops", stats[1].Name)
	assert.Equal(t, 1, stats[1].Count)
	assert.Equal(t, 5, stats[1].AvgDiscount)
}

func TestDashboardKPIs(t *testing.T) {
	kpis := DashboardKPIs(1000, 208, 50)

	assert.InDelta(t, 1000, kpis.TotalSales.Value, 1e-9)
	assert.InDelta(t, 208, kpis.TotalUsers.Value, 1e-9)
	assert.InDelta(t, 50, kpis.TotalOrders.Value, 1e-9)
	assert.InDelta(t, 20, kpis.AvgCartValue.Value, 1e-9)
	assert.Equal(t, "positive", kpis.TotalSales.Trend.ChangeType)
}

func TestDashboardKPIsEmpty(t *testing.T) {
	kpis := DashboardKPIs(0, 0, 0)

	assert.Zero(t, kpis.AvgCartValue.Value)
	assert.Equal(t, "+0.0%", kpis.TotalSales.Trend.Change)
}

func TestOrderKPIs(t *testing.T) {
	carts := []storeapi.Cart{
		{Total: 120, TotalQuantity: 4},
		{Total: 80, TotalQuantity: 2},
	}

	kpis := OrderKPIs(carts, 2)

	assert.InDelta(t, 2, kpis.TotalOrders.Value, 1e-9)
	assert.InDelta(t, 6, kpis.TotalProducts.Value, 1e-9)
	assert.InDelta(t, 100, kpis.AvgValue.Value, 1e-9)
	assert.InDelta(t, 2, kpis.UsersWithOrders.Value, 1e-9)
}

func TestOrderKPIsEmpty(t *testing.T) {
	kpis := OrderKPIs(nil, 0)
	assert.Zero(t, kpis.AvgValue.Value)
}

func TestCustomerKPIs(t *testing.T) {
	carts := []storeapi.Cart{{ID: 1}, {ID: 2}, {ID: 3}}

	kpis := CustomerKPIs(carts, 208)

	assert.InDelta(t, 208, kpis.TotalUsers.Value, 1e-9)
	assert.InDelta(t, 3, kpis.UsersActive.Value, 1e-9)
	assert.InDelta(t, 52, kpis.NewCustomers.Value, 1e-9)
}

func TestProductKPIs(t *testing.T) {
	products := []storeapi.Product{
		{Category: "beauty", Stock: 5},
		{Category: "beauty", Stock: 15},
		{Category: "laptops", Stock: 0},
	}

	kpis := ProductKPIs(products, Categories(products))

	assert.InDelta(t, 3, kpis.TotalProducts.Value, 1e-9)
	assert.InDelta(t, 2, kpis.LowStock.Value, 1e-9)
	assert.InDelta(t, 2, kpis.TotalCategories.Value, 1e-9)
}

func TestCategoryKPIs(t *testing.T) {
	products := []storeapi.Product{
		{Category: "beauty", Stock: 6, DiscountPercentage: 10},
		{Category: "laptops", Stock: 12, DiscountPercentage: 20},
		{Category: "beauty", Stock: 4, DiscountPercentage: 6},
		{Category: "groceries", Stock: 5, DiscountPercentage: 4},
	}

	kpis := CategoryKPIs(products)

	assert.InDelta(t, 3, kpis.TotalCategories.Value, 1e-9)
	assert.InDelta(t, 10, kpis.AverageDiscount.Value, 1e-9)

	assert.Equal(t, "laptops", kpis.HighStock.Name)
	assert.InDelta(t, 12, kpis.HighStock.Total, 1e-9)
	assert.Equal(t, "groceries", kpis.LowStock.Name)
	assert.InDelta(t, 5, kpis.LowStock.Total, 1e-9)
}

func TestCategoryKPIsTieKeepsFirstSeen(t *testing.T) {
	products := []storeapi.Product{
		{Category: "beauty", Stock: 5},
		{Category: "laptops", Stock: 5},
	}

	kpis := CategoryKPIs(products)

	assert.Equal(t, "beauty", kpis.HighStock.Name)
	assert.Equal(t, "beauty", kpis.LowStock.Name)
}

func TestCategoryKPIsEmptyCatalog(t *testing.T) {
	kpis := CategoryKPIs(nil)

	assert.Zero(t, kpis.TotalCategories.Value)
	assert.Zero(t, kpis.AverageDiscount.Value)
	assert.Empty(t, kpis.HighStock.Name)
	assert.Empty(t, kpis.LowStock.Name)
}

func TestDiscountKPIs(t *testing.T) {
	products := []storeapi.Product{
		{Price: 100, DiscountPercentage: 10},
		{Price: 50, DiscountPercentage: 0},
		{Price: 200, DiscountPercentage: 25},
	}

	kpis := DiscountKPIs(products)

	assert.InDelta(t, 2, kpis.ProductsWithDiscount.Value, 1e-9)
	assert.InDelta(t, 35.0/3, kpis.AverageDiscount.Value, 1e-9)
	assert.InDelta(t, 25, kpis.MaxDiscount.Value, 1e-9)
	assert.InDelta(t, 60, kpis.TotalSavingsAmount.Value, 1e-9)

	// The mean must stay consistent with the raw percentage sum.
	assert.InDelta(t, 35, kpis.AverageDiscount.Value*3, 1e-9)
}

func TestDiscountKPIsEmpty(t *testing.T) {
	kpis := DiscountKPIs(nil)
	assert.Zero(t, kpis.AverageDiscount.Value)
	assert.Zero(t, kpis.MaxDiscount.Value)
}

package aggregate

import (
	"fmt"
	"testing"

	"github.com/merchview/merchview/internal/dashboard/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartCarts() []model.EnrichedCart {
	return []model.EnrichedCart{
		{
			ID: 1,
			Products: []model.EnrichedCartProduct{
				{ID: 2, Title: "Powder Canister", Category: "beauty", Quantity: 3, Total: 30},
				{ID: 1, Title: "Essence Mascara", Category: "beauty", Quantity: 3, Total: 45},
			},
		},
		{
			ID: 2,
			Products: []model.EnrichedCartProduct{
				{ID: 3, Title: "Apple MacBook Pro", Category: "laptops", Quantity: 5, Total: 100},
			},
		},
	}
}

func TestTopSellingProducts(t *testing.T) {
	top := TopSellingProducts(chartCarts())
	require.Len(t, top, 3)

	assert.Equal(t, "Apple MacBook Pro", top[0].Name)
	assert.Equal(t, 5, top[0].Sales)
	assert.Equal(t, "$100.00", top[0].Revenue)
	assert.Equal(t, "-1%", top[0].Trend)

	// Equal sales resolve by ascending product id.
	assert.Equal(t, "Essence Mascara", top[1].Name)
	assert.Equal(t, "Powder Canister", top[2].Name)
	assert.Equal(t, "$45.00", top[1].Revenue)
}

func TestTopSellingProductsMergesRepeatPurchases(t *testing.T) {
	carts := []model.EnrichedCart{
		{ID: 1, Products: []model.EnrichedCartProduct{{ID: 7, Title: "Red Lipstick", Quantity: 1, Total: 12.5}}},
		{ID: 2, Products: []model.EnrichedCartProduct{{ID: 7, Title: "Red Lipstick", Quantity: 3, Total: 37.5}}},
	}

	top := TopSellingProducts(carts)
	require.Len(t, top, 1)
	assert.Equal(t, 4, top[0].Sales)
	assert.Equal(t, "$50.00", top[0].Revenue)
	assert.Equal(t, "+6%", top[0].Trend)
}

func TestTopSellingProductsLimit(t *testing.T) {
	carts := make([]model.EnrichedCart, 0, 9)
	for i := 1; i <= 9; i++ {
		carts = append(carts, model.EnrichedCart{
			ID: i,
			Products: []model.EnrichedCartProduct{
				{ID: i, Title: fmt.Sprintf("Item %d", i), Quantity: i, Total: float64(i)},
			},
		})
	}

	top := TopSellingProducts(carts)
	require.Len(t, top, 7)
	assert.Equal(t, "Item 9", top[0].Name)
	assert.Equal(t, "Item 3", top[6].Name)
}

func TestTopSellingProductsEmpty(t *testing.T) {
	assert.Empty(t, TopSellingProducts(nil))
}

func TestCategoryAreaChart(t *testing.T) {
	series := CategoryAreaChart(chartCarts())
	require.Len(t, series, 2)

	assert.Equal(t, "laptops", series[0].Name)
	assert.InDelta(t, 100, series[0].Revenue, 1e-9)
	assert.Equal(t, 5, series[0].Orders)

	assert.Equal(t, "beauty", series[1].Name)
	assert.InDelta(t, 75, series[1].Revenue, 1e-9)
	assert.Equal(t, 6, series[1].Orders)
}

func TestCategoryAreaChartRoundsToCents(t *testing.T) {
	carts := []model.EnrichedCart{
		{ID: 1, Products: []model.EnrichedCartProduct{
			{ID: 1, Category: "beauty", Quantity: 3, Total: 10.333},
			{ID: 2, Category: "beauty", Quantity: 1, Total: 20.444},
		}},
	}

	series := CategoryAreaChart(carts)
	require.Len(t, series, 1)
	assert.InDelta(t, 30.78, series[0].Revenue, 1e-9)
}

func TestCategoryAreaChartTieKeepsFirstSeen(t *testing.T) {
	carts := []model.EnrichedCart{
		{ID: 1, Products: []model.EnrichedCartProduct{
			{ID: 1, Category: "tablets", Quantity: 1, Total: 50},
			{ID: 2, Category: "tops", Quantity: 1, Total: 50},
		}},
	}

	series := CategoryAreaChart(carts)
	require.Len(t, series, 2)
	assert.Equal(t, "tablets", series[0].Name)
	assert.Equal(t, "tops", series[1].Name)
}

func TestCategoryPieChartHumanizesSlugs(t *testing.T) {
	carts := []model.EnrichedCart{
		{ID: 1, Products: []model.EnrichedCartProduct{
			{ID: 1, Category: "home-decoration", Quantity: 1, Total: 80},
			{ID: 2, Category: "beauty", Quantity: 1, Total: 20},
		}},
	}

	points := CategoryPieChart(carts)
	require.Len(t, points, 2)
	assert.Equal(t, "home decoration", points[0].Name)
	assert.InDelta(t, 80, points[0].Value, 1e-9)
	assert.Equal(t, "beauty", points[1].Name)
}

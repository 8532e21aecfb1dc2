package aggregate

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/merchview/merchview/internal/dashboard/model"
)

const topSellingLimit = 7

// TopSellingProducts ranks products by units sold across all cart lines.
// Base order is ascending product id so that ties in the stable sort
// resolve the same way on every fetch. The trend string is synthesized from
// the sales count parity, since the API has no sales history.
func TopSellingProducts(carts []model.EnrichedCart) []model.TopSellingProduct {
	type productSales struct {
		id      int
		name    string
		sales   int
		revenue float64
	}
	byID := make(map[int]*productSales)
	for _, cart := range carts {
		for _, line := range cart.Products {
			agg, ok := byID[line.ID]
			if !ok {
				agg = &productSales{id: line.ID, name: line.Title}
				byID[line.ID] = agg
			}
			agg.sales += line.Quantity
			agg.revenue += line.Total
		}
	}

	ranked := make([]*productSales, 0, len(byID))
	for _, agg := range byID {
		ranked = append(ranked, agg)
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].id < ranked[j].id })
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].sales > ranked[j].sales })
	if len(ranked) > topSellingLimit {
		ranked = ranked[:topSellingLimit]
	}

	top := make([]model.TopSellingProduct, 0, len(ranked))
	for _, p := range ranked {
		trend := fmt.Sprintf("-%d%%", p.sales%5+1)
		if p.sales%2 == 0 {
			trend = fmt.Sprintf("+%d%%", p.sales%15+2)
		}
		top = append(top, model.TopSellingProduct{
			Name:    p.name,
			Sales:   p.sales,
			Revenue: fmt.Sprintf("$%.2f", p.revenue),
			Trend:   trend,
		})
	}
	return top
}

type categoryTotals struct {
	name    string
	revenue float64
	orders  int
}

// categoryRevenue accumulates revenue and units per line-item category in
// first-seen order.
func categoryRevenue(carts []model.EnrichedCart) []categoryTotals {
	indexByName := make(map[string]int, 16)
	totals := make([]categoryTotals, 0, 16)
	for _, cart := range carts {
		for _, line := range cart.Products {
			idx, ok := indexByName[line.Category]
			if !ok {
				idx = len(totals)
				indexByName[line.Category] = idx
				totals = append(totals, categoryTotals{name: line.Category})
			}
			totals[idx].revenue += line.Total
			totals[idx].orders += line.Quantity
		}
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].revenue > totals[j].revenue })
	return totals
}

// CategoryAreaChart returns per-category revenue and units, highest revenue
// first, revenue rounded to cents for chart display.
func CategoryAreaChart(carts []model.EnrichedCart) []model.CategorySeries {
	totals := categoryRevenue(carts)
	series := make([]model.CategorySeries, 0, len(totals))
	for _, t := range totals {
		series = append(series, model.CategorySeries{
			Name:    t.name,
			Revenue: roundCents(t.revenue),
			Orders:  t.orders,
		})
	}
	return series
}

// CategoryPieChart is the same rollup shaped for a pie chart, with slugged
// category names made human readable.
func CategoryPieChart(carts []model.EnrichedCart) []model.PiePoint {
	totals := categoryRevenue(carts)
	points := make([]model.PiePoint, 0, len(totals))
	for _, t := range totals {
		points = append(points, model.PiePoint{
			Name:  strings.ReplaceAll(t.name, "-", " "),
			Value: roundCents(t.revenue),
		})
	}
	return points
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

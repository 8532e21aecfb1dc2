package aggregate

import (
	"github.com/merchview/merchview/internal/dashboard/model"
	"github.com/merchview/merchview/internal/locale"
)

// cartsPerMonth is the fixed positional window width of the revenue chart.
// The dataset has no order timestamps, so "months" are synthesized by
// consuming carts two at a time in arrival order.
const cartsPerMonth = 2

// RevenueByMonth groups the cart list into at most 12 positional month
// buckets. Buckets sum gross revenue and unit counts; the final month
// absorbs every remaining cart, and bucketing stops early once the list is
// exhausted.
func RevenueByMonth(carts []model.EnrichedCart, loc string) []model.MonthRevenue {
	months := locale.Months(loc)
	grouped := make([]model.MonthRevenue, 0, len(months))

	for i, month := range months {
		start := i * cartsPerMonth
		if start >= len(carts) {
			break
		}
		end := start + cartsPerMonth
		if i == len(months)-1 || end > len(carts) {
			end = len(carts)
		}

		revenue := 0.0
		orders := 0
		for _, cart := range carts[start:end] {
			revenue += cart.Total
			orders += cart.TotalQuantity
		}
		grouped = append(grouped, model.MonthRevenue{
			Month:   month,
			Revenue: revenue,
			Orders:  orders,
		})
	}
	return grouped
}

package aggregate

import (
	"math"

	"github.com/merchview/merchview/internal/dashboard/model"
	"github.com/merchview/merchview/pkg/storeapi"
)

// LowStockThreshold is the system-wide stock level below which a product
// counts as low stock, for both the product KPIs and the per-category
// alert lists.
const LowStockThreshold = 10

// safeDiv is the uniform divide-by-zero policy for KPI ratios: a zero
// denominator yields 0 rather than NaN or Inf.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// RevenueTotals computes the three headline money figures over raw carts.
// totalSales is the money actually collected (discounted totals);
// totalGross is the undiscounted value; totalDiscountCash is the gap.
func RevenueTotals(carts []storeapi.Cart) (totalSales, totalGross, totalDiscountCash float64) {
	for _, c := range carts {
		totalSales += c.DiscountedTotal
		totalGross += c.Total
	}
	totalDiscountCash = totalGross - totalSales
	return totalSales, totalGross, totalDiscountCash
}

// UsersWithOrders counts distinct customers across carts, not the size of
// the user collection.
func UsersWithOrders(carts []storeapi.Cart) int {
	seen := make(map[int]struct{}, len(carts))
	for _, c := range carts {
		seen[c.UserID] = struct{}{}
	}
	return len(seen)
}

// ProductsSold sums the unit quantity across all carts.
func ProductsSold(carts []storeapi.Cart) int {
	sold := 0
	for _, c := range carts {
		sold += c.TotalQuantity
	}
	return sold
}

// Categories returns the distinct category values present in the catalog,
// in first-seen order.
func Categories(products []storeapi.Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}

// AllStatuses returns the distinct synthetic order statuses observed on the
// enriched carts, in first-seen order.
func AllStatuses(carts []model.EnrichedCart) []string {
	seen := make(map[string]struct{}, 4)
	statuses := make([]string, 0, 4)
	for _, c := range carts {
		if _, ok := seen[c.Status]; ok {
			continue
		}
		seen[c.Status] = struct{}{}
		statuses = append(statuses, c.Status)
	}
	return statuses
}

// CategoryStats builds the overview card per category: product count, the
// rounded mean discount, and the first product's thumbnail as cover image.
func CategoryStats(products []storeapi.Product, categories []string) []model.CategoryStat {
	stats := make([]model.CategoryStat, 0, len(categories))
	for _, category := range categories {
		count := 0
		discountSum := 0.0
		featuredImage := ""
		for _, p := range products {
			if p.Category != category {
				continue
			}
			if count == 0 {
				featuredImage = p.Thumbnail
			}
			count++
			discountSum += p.DiscountPercentage
		}
		stats = append(stats, model.CategoryStat{
			Name:          category,
			Count:         count,
			AvgDiscount:   int(math.Round(safeDiv(discountSum, float64(count)))),
			FeaturedImage: featuredImage,
		})
	}
	return stats
}

// DashboardKPIs builds the overview page headline metrics. totalUsers and
// totalOrders are the upstream collection totals, not the page sizes.
func DashboardKPIs(totalSales float64, totalUsers, totalOrders int) model.DashboardKPIs {
	avgCartValue := safeDiv(totalSales, float64(totalOrders))
	return model.DashboardKPIs{
		TotalSales:   kpi(totalSales, "totalSales"),
		TotalUsers:   kpi(float64(totalUsers), "totalUsers"),
		TotalOrders:  kpi(float64(totalOrders), "totalOrders"),
		AvgCartValue: kpi(avgCartValue, "avgCartValue"),
	}
}

// OrderKPIs builds the orders page metrics over the fetched carts.
func OrderKPIs(carts []storeapi.Cart, usersWithOrders int) model.OrderKPIs {
	totalQuantity := 0
	grossSum := 0.0
	for _, c := range carts {
		totalQuantity += c.TotalQuantity
		grossSum += c.Total
	}
	return model.OrderKPIs{
		TotalOrders:     kpi(float64(len(carts)), "totalOrders"),
		TotalProducts:   kpi(float64(totalQuantity), "totalProducts"),
		AvgValue:        kpi(safeDiv(grossSum, float64(len(carts))), "avgValue"),
		UsersWithOrders: kpi(float64(usersWithOrders), "usersWithOrders"),
	}
}

// CustomerKPIs builds the customers page metrics. newCustomers is a display
// approximation: a quarter of the user base.
func CustomerKPIs(carts []storeapi.Cart, totalUsers int) model.CustomerKPIs {
	return model.CustomerKPIs{
		TotalUsers:   kpi(float64(totalUsers), "totalUsers"),
		UsersActive:  kpi(float64(len(carts)), "usersActive"),
		NewCustomers: kpi(float64(totalUsers)/4, "newCustomers"),
	}
}

// ProductKPIs builds the products page metrics.
func ProductKPIs(products []storeapi.Product, categories []string) model.ProductKPIs {
	lowStockCount := 0
	for _, p := range products {
		if p.Stock < LowStockThreshold {
			lowStockCount++
		}
	}
	return model.ProductKPIs{
		TotalProducts:   kpi(float64(len(products)), "totalProducts"),
		LowStock:        kpi(float64(lowStockCount), "lowStock"),
		TotalCategories: kpi(float64(len(categories)), "totalCategories"),
	}
}

// CategoryKPIs groups the catalog by category and reports the category
// count, the mean discount, and the categories holding the most and least
// total stock. Extrema use strict comparisons, so ties keep the category
// encountered first.
func CategoryKPIs(products []storeapi.Product) model.CategoryKPIs {
	type categoryStock struct {
		name  string
		stock int
	}
	indexByName := make(map[string]int, 16)
	grouped := make([]categoryStock, 0, 16)
	discountSum := 0.0
	for _, p := range products {
		idx, ok := indexByName[p.Category]
		if !ok {
			idx = len(grouped)
			indexByName[p.Category] = idx
			grouped = append(grouped, categoryStock{name: p.Category})
		}
		grouped[idx].stock += p.Stock
		discountSum += p.DiscountPercentage
	}

	kpis := model.CategoryKPIs{
		TotalCategories: kpi(float64(len(grouped)), "totalCategories"),
		AverageDiscount: kpi(safeDiv(discountSum, float64(len(products))), "averageDiscount"),
	}
	if len(grouped) == 0 {
		return kpis
	}

	high := grouped[0]
	low := grouped[0]
	for _, g := range grouped[1:] {
		if g.stock > high.stock {
			high = g
		}
		if g.stock < low.stock {
			low = g
		}
	}
	kpis.HighStock = model.StockKPI{
		Name:  high.name,
		Total: float64(high.stock),
		Trend: CalculateTrend(float64(high.stock), "highStock"),
	}
	kpis.LowStock = model.StockKPI{
		Name:  low.name,
		Total: float64(low.stock),
		Trend: CalculateTrend(float64(low.stock), "lowStock"),
	}
	return kpis
}

// DiscountKPIs runs one pass over the catalog computing the discount
// metrics simultaneously: discounted-product count, mean and max
// percentage, and the total currency saved at current prices.
func DiscountKPIs(products []storeapi.Product) model.DiscountKPIs {
	productsWithDiscount := 0
	percentageSum := 0.0
	maxDiscount := 0.0
	totalSavings := 0.0
	for _, p := range products {
		if p.DiscountPercentage > 0 {
			productsWithDiscount++
		}
		percentageSum += p.DiscountPercentage
		if p.DiscountPercentage > maxDiscount {
			maxDiscount = p.DiscountPercentage
		}
		totalSavings += p.Price * p.DiscountPercentage / 100
	}
	averageDiscount := safeDiv(percentageSum, float64(len(products)))

	return model.DiscountKPIs{
		ProductsWithDiscount: kpi(float64(productsWithDiscount), "productsWithDiscount"),
		AverageDiscount:      kpi(averageDiscount, "averageDiscount"),
		MaxDiscount:          kpi(maxDiscount, "maxDiscount"),
		TotalSavingsAmount:   kpi(totalSavings, "totalSavingsAmount"),
	}
}

func kpi(value float64, seed string) model.KPI {
	return model.KPI{
		Value: value,
		Trend: CalculateTrend(value, seed),
	}
}

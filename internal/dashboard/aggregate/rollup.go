package aggregate

import (
	"fmt"
	"sort"

	"github.com/merchview/merchview/internal/dashboard/model"
	"github.com/merchview/merchview/pkg/storeapi"
)

const topProductsPerCategory = 5

// CategoryDetails builds one detail record per catalog category, merging
// catalog-level stock figures with the revenue actually transacted in the
// enriched carts. Both scans run per category; fine at tens of categories
// and a few thousand cart lines.
func CategoryDetails(products []storeapi.Product, categories []string, carts []model.EnrichedCart) map[string]model.CategoryDetail {
	details := make(map[string]model.CategoryDetail, len(categories))

	for _, category := range categories {
		inCategory := make([]storeapi.Product, 0)
		totalStock := 0
		inventoryValue := 0.0
		for _, p := range products {
			if p.Category != category {
				continue
			}
			inCategory = append(inCategory, p)
			totalStock += p.Stock
			inventoryValue += p.Price * float64(p.Stock)
		}

		revenue := 0.0
		itemsSold := 0
		for _, cart := range carts {
			for _, line := range cart.Products {
				if line.Category != category {
					continue
				}
				revenue += line.Total
				itemsSold += line.Quantity
			}
		}

		sort.SliceStable(inCategory, func(i, j int) bool {
			return inCategory[i].Rating > inCategory[j].Rating
		})

		topProducts := inCategory
		if len(topProducts) > topProductsPerCategory {
			topProducts = topProducts[:topProductsPerCategory]
		}

		lowStockAlerts := make([]storeapi.Product, 0)
		for _, p := range inCategory {
			if p.Stock < LowStockThreshold {
				lowStockAlerts = append(lowStockAlerts, p)
			}
		}

		// A category can exist with zero stock on hand; average against a
		// denominator of 1 so the figure stays finite.
		avgPriceDenom := totalStock
		if avgPriceDenom == 0 {
			avgPriceDenom = 1
		}

		details[category] = model.CategoryDetail{
			Name: category,
			Stats: model.CategoryDetailStats{
				Revenue:        revenue,
				ItemsSold:      itemsSold,
				TotalStock:     totalStock,
				InventoryValue: inventoryValue,
				AvgPrice:       fmt.Sprintf("%.2f", inventoryValue/float64(avgPriceDenom)),
			},
			TopProducts:    topProducts,
			LowStockAlerts: lowStockAlerts,
		}
	}
	return details
}

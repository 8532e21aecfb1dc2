package enrich

import (
	"fmt"

	"github.com/merchview/merchview/internal/dashboard/model"
	"github.com/merchview/merchview/internal/locale"
	"github.com/merchview/merchview/pkg/storeapi"
)

// FallbackCategory is substituted when a cart line references a product id
// absent from the catalog lookup. Enrichment never fails on a missing
// foreign key.
const FallbackCategory = "Other"

// Carts joins raw carts against the user and category lookups and assigns
// each cart a deterministic synthetic status from its id. Inputs are never
// mutated; the result is built from fresh values so the raw collections
// stay valid for every other consumer of the same fetch.
func Carts(carts []storeapi.Cart, userByID map[int]storeapi.User, categoryByProductID map[int]string, loc string) []model.EnrichedCart {
	statuses := locale.OrderStatuses(loc)

	enriched := make([]model.EnrichedCart, 0, len(carts))
	for _, cart := range carts {
		customerName := fmt.Sprintf("User #%d", cart.UserID)
		customerEmail := ""
		customerImage := ""
		if user, ok := userByID[cart.UserID]; ok {
			customerName = user.FirstName + " " + user.LastName
			customerEmail = user.Email
			customerImage = user.Image
		}

		products := make([]model.EnrichedCartProduct, 0, len(cart.Products))
		for _, line := range cart.Products {
			category, ok := categoryByProductID[line.ID]
			if !ok {
				category = FallbackCategory
			}
			products = append(products, model.EnrichedCartProduct{
				ID:                 line.ID,
				Title:              line.Title,
				Price:              line.Price,
				Quantity:           line.Quantity,
				Total:              line.Total,
				DiscountPercentage: line.DiscountPercentage,
				DiscountedPrice:    line.DiscountedPrice,
				Thumbnail:          line.Thumbnail,
				Category:           category,
			})
		}

		enriched = append(enriched, model.EnrichedCart{
			ID:              cart.ID,
			Products:        products,
			Total:           cart.Total,
			DiscountedTotal: cart.DiscountedTotal,
			UserID:          cart.UserID,
			TotalProducts:   cart.TotalProducts,
			TotalQuantity:   cart.TotalQuantity,
			CustomerName:    customerName,
			CustomerEmail:   customerEmail,
			CustomerImage:   customerImage,
			Status:          statuses[cart.ID%4],
		})
	}
	return enriched
}

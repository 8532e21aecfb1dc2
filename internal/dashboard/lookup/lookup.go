package lookup

import "github.com/merchview/merchview/pkg/storeapi"

// Lookups are rebuilt from scratch on every dashboard fetch; nothing here
// is cached at package level, so concurrent fetches never share state.

// Users indexes users by id for O(1) cart joins. Duplicate ids are
// undefined upstream; last write wins.
func Users(users []storeapi.User) map[int]storeapi.User {
	userByID := make(map[int]storeapi.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}
	return userByID
}

// ProductCategories indexes the category tag by product id. Callers handle
// misses with their own default; absent ids simply report not-found.
func ProductCategories(products []storeapi.Product) map[int]string {
	categoryByProductID := make(map[int]string, len(products))
	for _, p := range products {
		categoryByProductID[p.ID] = p.Category
	}
	return categoryByProductID
}

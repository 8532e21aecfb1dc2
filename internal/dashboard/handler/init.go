package handler

import (
	"sync"

	"github.com/merchview/merchview/internal/configs"
	"github.com/merchview/merchview/pkg/storeapi"
)

var (
	dashboardHandlerInstance Handler
	initOnce                 sync.Once
)

// InitDashboardHandler builds the singleton dashboard handler. The store
// API client must be initialized by the caller.
func InitDashboardHandler(client storeapi.Client, config configs.Configs) Handler {
	initOnce.Do(func() {
		dashboardHandlerInstance = NewDashboardHandler(client, config.StoreApiTopDealsLimit)
	})
	return dashboardHandlerInstance
}

// GetDashboardHandler returns the initialized handler.
func GetDashboardHandler() Handler {
	return dashboardHandlerInstance
}

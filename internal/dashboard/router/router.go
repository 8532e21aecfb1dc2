package router

import (
	"sync"

	"github.com/merchview/merchview/internal/dashboard/controller"
	"github.com/merchview/merchview/pkg/httpframework"
)

var (
	initDashboardRouterOnce sync.Once
)

// Init expects http framework and the dashboard handler to be initialized
// before calling this function
func Init() {
	initDashboardRouterOnce.Do(func() {
		dashboardAPI := httpframework.Instance().Group("/api/v1/merchview")
		{
			dashboardAPI.GET("/dashboard", controller.NewController().GetDashboard)
			dashboardAPI.GET("/health", controller.NewController().Health)
		}
	})
}

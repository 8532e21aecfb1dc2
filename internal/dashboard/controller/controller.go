package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	dashboardhandler "github.com/merchview/merchview/internal/dashboard/handler"
	"github.com/merchview/merchview/internal/locale"
)

type DashboardController struct {
	handler dashboardhandler.Handler
}

func NewController() *DashboardController {
	return &DashboardController{
		handler: dashboardhandler.GetDashboardHandler(),
	}
}

// GetDashboard serves the full dashboard aggregate. The frontend does its
// own filtering and pagination on top, so one payload covers every page.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	loc := ctx.Query("locale")
	if loc == "" {
		loc = locale.English
	}

	data, err := c.handler.GetDashboardData(ctx.Request.Context(), loc, locale.DefaultTranslator(loc))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, data)
}

func (c *DashboardController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

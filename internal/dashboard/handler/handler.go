package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/merchview/merchview/internal/dashboard/aggregate"
	"github.com/merchview/merchview/internal/dashboard/enrich"
	"github.com/merchview/merchview/internal/dashboard/lookup"
	"github.com/merchview/merchview/internal/dashboard/model"
	"github.com/merchview/merchview/internal/locale"
	"github.com/merchview/merchview/pkg/metric"
	"github.com/merchview/merchview/pkg/storeapi"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTopDealsLimit = 10
	recentOrdersLimit    = 15
)

// Handler assembles the dashboard aggregate: one call fetches carts, users
// and products concurrently, then derives every KPI set, chart series and
// feed in-process. A failed upstream fetch fails the whole aggregate; there
// is no partial result.
type Handler interface {
	GetDashboardData(ctx context.Context, loc string, t locale.Translator) (*model.DashboardData, error)
}

type dashboardHandler struct {
	client        storeapi.Client
	topDealsLimit int
}

func NewDashboardHandler(client storeapi.Client, topDealsLimit int) Handler {
	if topDealsLimit <= 0 {
		topDealsLimit = defaultTopDealsLimit
	}
	return &dashboardHandler{
		client:        client,
		topDealsLimit: topDealsLimit,
	}
}

func (h *dashboardHandler) GetDashboardData(ctx context.Context, loc string, t locale.Translator) (*model.DashboardData, error) {
	var (
		cartsRes       *storeapi.CartsResponse
		usersRes       *storeapi.UsersResponse
		topDealsRes    *storeapi.ProductsResponse
		allProductsRes *storeapi.ProductsResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cartsRes, err = h.client.GetCarts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		usersRes, err = h.client.GetUsers(gctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		topDealsRes, err = h.client.GetProducts(gctx, storeapi.ProductQuery{
			Limit:  h.topDealsLimit,
			SortBy: "discountPercentage",
			Order:  "desc",
		})
		return err
	})
	g.Go(func() error {
		var err error
		allProductsRes, err = h.client.GetProducts(gctx, storeapi.ProductQuery{Limit: 0})
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("locale", loc).Msg("Dashboard data fetch failed")
		return nil, fmt.Errorf("failed to fetch dashboard data: %w", err)
	}

	buildStart := time.Now()

	carts := cartsRes.Carts

	// Category values are translated once at the source so the lookups,
	// rollups and charts all see the same display names.
	allProducts := make([]storeapi.Product, len(allProductsRes.Products))
	for i, p := range allProductsRes.Products {
		p.Category = locale.CategoryName(loc, p.Category)
		allProducts[i] = p
	}

	userByID := lookup.Users(usersRes.Users)
	categoryByProductID := lookup.ProductCategories(allProducts)

	enrichedCarts := enrich.Carts(carts, userByID, categoryByProductID, loc)

	totalSales, _, totalDiscountCash := aggregate.RevenueTotals(carts)
	usersWithOrders := aggregate.UsersWithOrders(carts)
	allCategories := aggregate.Categories(allProducts)

	recentOrders := enrichedCarts
	if len(recentOrders) > recentOrdersLimit {
		recentOrders = recentOrders[:recentOrdersLimit]
	}

	data := &model.DashboardData{
		Carts:         enrichedCarts,
		Users:         usersRes.Users,
		AllProducts:   allProducts,
		AllCategories: allCategories,
		Stats: model.Stats{
			CategoryStats:   aggregate.CategoryStats(allProducts, allCategories),
			TotalSales:      totalSales,
			ProductsSold:    aggregate.ProductsSold(carts),
			TotalDiscounts:  totalDiscountCash,
			UsersWithOrders: usersWithOrders,
			AllStatus:       aggregate.AllStatuses(enrichedCarts),
		},
		TopSellingProducts:  aggregate.TopSellingProducts(enrichedCarts),
		CategoryKpis:        aggregate.CategoryKPIs(allProducts),
		ProductKpis:         aggregate.ProductKPIs(allProducts, allCategories),
		DashboardKpis:       aggregate.DashboardKPIs(totalSales, usersRes.Total, cartsRes.Total),
		OrderKpis:           aggregate.OrderKPIs(carts, usersWithOrders),
		CustomerKpis:        aggregate.CustomerKPIs(carts, usersRes.Total),
		DiscountKpis:        aggregate.DiscountKPIs(allProducts),
		RevenueByMonthChart: aggregate.RevenueByMonth(enrichedCarts, loc),
		CategoriesAreaChart: aggregate.CategoryAreaChart(enrichedCarts),
		CategoriesPieChart:  aggregate.CategoryPieChart(enrichedCarts),
		RecentActivity:      aggregate.RecentActivity(enrichedCarts, usersRes.Users, t),
		DiscountsData:       topDealsRes.Products,
		RecentsOrders:       recentOrders,
		CategoryDetails:     aggregate.CategoryDetails(allProducts, allCategories, enrichedCarts),
	}

	buildTags := metric.BuildTag(metric.NewTag(metric.TagLocale, loc))
	metric.Incr(metric.AggregateBuildCount, buildTags)
	metric.Timing(metric.AggregateBuildLatency, time.Since(buildStart), buildTags)

	return data, nil
}

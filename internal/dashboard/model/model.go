package model

import "github.com/merchview/merchview/pkg/storeapi"

// TrendData is the fabricated period-over-period indicator attached to
// every KPI. The upstream API has no historical data, so trends are derived
// deterministically (see aggregate.CalculateTrend).
type TrendData struct {
	Change     string `json:"change"`
	ChangeType string `json:"changeType"` // "positive" | "negative"
	Trend      string `json:"trend"`      // "up" | "down"
}

// KPI is a headline metric plus its trend. Recomputed on every aggregate
// fetch, never cached or mutated in place.
type KPI struct {
	Value float64   `json:"value"`
	Trend TrendData `json:"trend"`
}

// StockKPI is a KPI variant naming the category holding a stock extremum.
type StockKPI struct {
	Name  string    `json:"name"`
	Total float64   `json:"total"`
	Trend TrendData `json:"trend"`
}

// EnrichedCartProduct is a cart line item with its category backfilled from
// the product catalog lookup.
type EnrichedCartProduct struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	Total              float64 `json:"total"`
	DiscountPercentage float64 `json:"discountPercentage"`
	DiscountedPrice    float64 `json:"discountedPrice"`
	Thumbnail          string  `json:"thumbnail"`
	Category           string  `json:"category"`
}

// EnrichedCart is a raw cart joined against the user lookup plus a
// deterministic synthetic order status.
type EnrichedCart struct {
	ID              int                   `json:"id"`
	Products        []EnrichedCartProduct `json:"products"`
	Total           float64               `json:"total"`
	DiscountedTotal float64               `json:"discountedTotal"`
	UserID          int                   `json:"userId"`
	TotalProducts   int                   `json:"totalProducts"`
	TotalQuantity   int                   `json:"totalQuantity"`
	CustomerName    string                `json:"customerName"`
	CustomerEmail   string                `json:"customerEmail"`
	CustomerImage   string                `json:"customerImage"`
	Status          string                `json:"status"`
}

type CategoryStat struct {
	Name          string `json:"name"`
	Count         int    `json:"count"`
	AvgDiscount   int    `json:"avgDiscount"`
	FeaturedImage string `json:"featuredImage"`
}

type Stats struct {
	CategoryStats   []CategoryStat `json:"categoryStats"`
	TotalSales      float64        `json:"totalSales"`
	ProductsSold    int            `json:"productsSold"`
	TotalDiscounts  float64        `json:"totalDiscounts"`
	UsersWithOrders int            `json:"usersWithOrders"`
	AllStatus       []string       `json:"allStatus"`
}

type DashboardKPIs struct {
	TotalSales   KPI `json:"totalSales"`
	TotalUsers   KPI `json:"totalUsers"`
	TotalOrders  KPI `json:"totalOrders"`
	AvgCartValue KPI `json:"avgCartValue"`
}

type OrderKPIs struct {
	TotalOrders     KPI `json:"totalOrders"`
	TotalProducts   KPI `json:"totalProducts"`
	AvgValue        KPI `json:"avgValue"`
	UsersWithOrders KPI `json:"usersWithOrders"`
}

type CustomerKPIs struct {
	TotalUsers   KPI `json:"totalUsers"`
	UsersActive  KPI `json:"usersActive"`
	NewCustomers KPI `json:"newCustomers"`
}

type ProductKPIs struct {
	TotalProducts   KPI `json:"totalProducts"`
	LowStock        KPI `json:"lowStock"`
	TotalCategories KPI `json:"totalCategories"`
}

type CategoryKPIs struct {
	TotalCategories KPI      `json:"totalCategories"`
	AverageDiscount KPI      `json:"averageDiscount"`
	HighStock       StockKPI `json:"highStock"`
	LowStock        StockKPI `json:"lowStock"`
}

type DiscountKPIs struct {
	ProductsWithDiscount KPI `json:"productsWithDiscount"`
	AverageDiscount      KPI `json:"averageDiscount"`
	MaxDiscount          KPI `json:"maxDiscount"`
	TotalSavingsAmount   KPI `json:"totalSavingsAmount"`
}

// MonthRevenue is one positional month bucket of the revenue chart.
type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type CategorySeries struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type PiePoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TopSellingProduct struct {
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue string `json:"revenue"`
	Trend   string `json:"trend"`
}

// Activity is an ephemeral narrative feed entry, rebuilt on every fetch.
type Activity struct {
	Icon      string `json:"icon"`
	IconBg    string `json:"iconBg"`
	IconColor string `json:"iconColor"`
	Text      string `json:"text"`
	Time      string `json:"time"`
}

type CategoryDetailStats struct {
	Revenue        float64 `json:"revenue"`
	ItemsSold      int     `json:"itemsSold"`
	TotalStock     int     `json:"totalStock"`
	InventoryValue float64 `json:"inventoryValue"`
	AvgPrice       string  `json:"avgPrice"`
}

// CategoryDetail merges catalog-level stock stats with transaction-level
// revenue for one category.
type CategoryDetail struct {
	Name           string              `json:"name"`
	Stats          CategoryDetailStats `json:"stats"`
	TopProducts    []storeapi.Product  `json:"topProducts"`
	LowStockAlerts []storeapi.Product  `json:"lowStockAlerts"`
}

// DashboardData is the aggregate handed to the view layer: every KPI set,
// chart series, the enriched carts, category details and the activity feed
// for one dashboard load. A fetch either produces the whole aggregate or
// fails; there is no partial result.
type DashboardData struct {
	Carts               []EnrichedCart            `json:"carts"`
	Users               []storeapi.User           `json:"users"`
	AllProducts         []storeapi.Product        `json:"allProducts"`
	AllCategories       []string                  `json:"allCategories"`
	Stats               Stats                     `json:"stats"`
	TopSellingProducts  []TopSellingProduct       `json:"topSellingProducts"`
	CategoryKpis        CategoryKPIs              `json:"categoryKpis"`
	ProductKpis         ProductKPIs               `json:"productKpis"`
	DashboardKpis       DashboardKPIs             `json:"dashboardKpis"`
	OrderKpis           OrderKPIs                 `json:"orderKpis"`
	CustomerKpis        CustomerKPIs              `json:"customerKpis"`
	DiscountKpis        DiscountKPIs              `json:"discountKpis"`
	RevenueByMonthChart []MonthRevenue            `json:"revenueByMonthChart"`
	CategoriesAreaChart []CategorySeries          `json:"categoriesAreaChart"`
	CategoriesPieChart  []PiePoint                `json:"categoriesPieChart"`
	RecentActivity      []Activity                `json:"recentActivity"`
	DiscountsData       []storeapi.Product        `json:"discountsData"`
	RecentsOrders       []EnrichedCart            `json:"recentsOrders"`
	CategoryDetails     map[string]CategoryDetail `json:"categoryDetails"`
}

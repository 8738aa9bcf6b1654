package report

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardSummary is the headline view of the business: customer base,
// revenue taken, and the work queues that need attention.
type DashboardSummary struct {
	TotalClients      int64           `json:"total_clients"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	PendingOrders     int64           `json:"pending_orders"`
	OpenOpportunities int64           `json:"open_opportunities"`
	LowStockProducts  int64           `json:"low_stock_products"`
}

// MonthlyRevenue is one point of the revenue-over-time chart
type MonthlyRevenue struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardRepository reads aggregated figures for the dashboard
type DashboardRepository interface {
	// Summary reads the pre-aggregated dashboard view
	Summary(ctx context.Context) (*DashboardSummary, error)

	// MonthlyRevenue groups order totals by month, oldest first.
	// Cancelled orders are not revenue and are excluded.
	MonthlyRevenue(ctx context.Context) ([]MonthlyRevenue, error)
}

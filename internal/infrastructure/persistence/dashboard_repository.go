package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/landryjoias/crm/internal/domain/report"
)

// GormDashboardRepository implements DashboardRepository with raw SQL
// over the reporting view and the orders table
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

type dashboardSummaryRow struct {
	TotalClients      int64  `gorm:"column:total_clients"`
	TotalRevenue      string `gorm:"column:total_revenue"`
	PendingOrders     int64  `gorm:"column:pending_orders"`
	OpenOpportunities int64  `gorm:"column:open_opportunities"`
	LowStockProducts  int64  `gorm:"column:low_stock_products"`
}

// Summary reads the pre-aggregated dashboard view. A database without
// rows yet yields all-zero figures, not an error.
func (r *GormDashboardRepository) Summary(ctx context.Context) (*report.DashboardSummary, error) {
	var row dashboardSummaryRow
	result := r.db.WithContext(ctx).
		Raw("SELECT total_clients, total_revenue, pending_orders, open_opportunities, low_stock_products FROM vw_dashboard_resumo").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	summary := &report.DashboardSummary{
		TotalClients:      row.TotalClients,
		PendingOrders:     row.PendingOrders,
		OpenOpportunities: row.OpenOpportunities,
		LowStockProducts:  row.LowStockProducts,
	}
	if row.TotalRevenue != "" {
		revenue, err := parseDecimal(row.TotalRevenue)
		if err != nil {
			return nil, err
		}
		summary.TotalRevenue = revenue
	}
	return summary, nil
}

type monthlyRevenueRow struct {
	Month   string `gorm:"column:month"`
	Revenue string `gorm:"column:revenue"`
}

// MonthlyRevenue groups order totals by month, oldest first, leaving
// cancelled orders out
func (r *GormDashboardRepository) MonthlyRevenue(ctx context.Context) ([]report.MonthlyRevenue, error) {
	var rows []monthlyRevenueRow
	result := r.db.WithContext(ctx).
		Raw(`SELECT to_char(order_date, 'YYYY-MM') AS month, SUM(total_value) AS revenue
			FROM orders
			WHERE status <> 'CANCELADO'
			GROUP BY to_char(order_date, 'YYYY-MM')
			ORDER BY month ASC`).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	points := make([]report.MonthlyRevenue, 0, len(rows))
	for _, row := range rows {
		revenue, err := parseDecimal(row.Revenue)
		if err != nil {
			return nil, err
		}
		points = append(points, report.MonthlyRevenue{Month: row.Month, Revenue: revenue})
	}
	return points, nil
}

var _ report.DashboardRepository = (*GormDashboardRepository)(nil)

package report

import (
	"context"

	"github.com/landryjoias/crm/internal/domain/report"
)

// DashboardService exposes the aggregated management figures
type DashboardService struct {
	dashboards report.DashboardRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(dashboards report.DashboardRepository) *DashboardService {
	return &DashboardService{dashboards: dashboards}
}

// Summary returns the headline counters and revenue total
func (s *DashboardService) Summary(ctx context.Context) (*report.DashboardSummary, error) {
	return s.dashboards.Summary(ctx)
}

// MonthlyRevenue returns the revenue-over-time chart series
func (s *DashboardService) MonthlyRevenue(ctx context.Context) ([]report.MonthlyRevenue, error) {
	series, err := s.dashboards.MonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	if series == nil {
		series = []report.MonthlyRevenue{}
	}
	return series, nil
}

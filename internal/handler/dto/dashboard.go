package dto

import "github.com/fdieguez/sgp/internal/domain/entity"

// DashboardStatsResponse is the aggregate summary (HTTP).
type DashboardStatsResponse struct {
	TotalOrders     int            `json:"total_orders"`
	PendingOrders   int            `json:"pending_orders"`
	CompletedOrders int            `json:"completed_orders"`
	TotalSubsidies  int            `json:"total_subsidies"`
	SubsidyAmount   float64        `json:"subsidy_amount"`
	OrdersByOrigin  map[string]int `json:"orders_by_origin"`
}

// ToDashboardStatsResponse converts entity.DashboardStats to its DTO
func ToDashboardStatsResponse(stats *entity.DashboardStats) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalSubsidies:  stats.TotalSubsidies,
		SubsidyAmount:   stats.SubsidyAmount,
		OrdersByOrigin:  stats.OrdersByOrigin,
	}
}

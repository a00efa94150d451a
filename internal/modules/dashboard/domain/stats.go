package domain

import "github.com/shopspring/decimal"

// Stats summarises the document for the admin dashboard.
type Stats struct {
	TotalBookings   int             `json:"totalBookings"`
	TodayBookings   int             `json:"todayBookings"`
	TotalOrders     int             `json:"totalOrders"`
	TodayOrders     int             `json:"todayOrders"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TodayRevenue    decimal.Decimal `json:"todayRevenue"`
	AvailableTables int             `json:"availableTables"`
	TotalTables     int             `json:"totalTables"`
	PendingOrders   int             `json:"pendingOrders"`
	TotalCustomers  int             `json:"totalCustomers"`
	TotalMenuItems  int             `json:"totalMenuItems"`
	TotalStaff      int             `json:"totalStaff"`
}

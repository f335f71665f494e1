package models

// Aggregates served to the admin dashboard.

type DayCount struct {
	Date  string `json:"date"` // "2006-01-02"
	Count int    `json:"count"`
}

type DayRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int         `json:"count"`
}

type DashboardSummary struct {
	TotalOrdersToday int     `json:"totalOrdersToday"`
	RevenueToday     float64 `json:"revenueToday"`
	PendingOrders    int     `json:"pendingOrders"`
}

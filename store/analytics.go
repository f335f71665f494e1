package store

import (
	"context"

	"github.com/riquelima/gourmetgo/models"
)

const dateLayout = "2006-01-02"

func (s *Store) allOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersPerDay counts orders per calendar day over a rolling window ending
// today, oldest day first. days defaults to 7.
func (s *Store) OrdersPerDay(ctx context.Context, days int) ([]models.DayCount, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 7
	}
	orders, err := s.allOrders()
	if err != nil {
		return nil, err
	}
	countByDate := make(map[string]int)
	for _, o := range orders {
		countByDate[o.CreatedAt.Format(dateLayout)]++
	}
	data := make([]models.DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := s.now().AddDate(0, 0, -i).Format(dateLayout)
		data = append(data, models.DayCount{Date: date, Count: countByDate[date]})
	}
	return data, nil
}

// RevenuePerDay sums order totals per calendar day over a rolling window
// ending today, oldest day first. Canceled orders never count as revenue.
func (s *Store) RevenuePerDay(ctx context.Context, days int) ([]models.DayRevenue, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 7
	}
	orders, err := s.allOrders()
	if err != nil {
		return nil, err
	}
	revenueByDate := make(map[string]float64)
	for _, o := range orders {
		if o.Status == models.OrderStatusCanceled {
			continue
		}
		revenueByDate[o.CreatedAt.Format(dateLayout)] += o.TotalAmount
	}
	data := make([]models.DayRevenue, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := s.now().AddDate(0, 0, -i).Format(dateLayout)
		data = append(data, models.DayRevenue{Date: date, Revenue: revenueByDate[date]})
	}
	return data, nil
}

// OrdersByStatus counts the whole order table per status. Every status
// appears in the result, zero-filled if need be.
func (s *Store) OrdersByStatus(ctx context.Context) ([]models.StatusCount, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	orders, err := s.allOrders()
	if err != nil {
		return nil, err
	}
	countByStatus := make(map[models.OrderStatus]int, len(models.OrderStatuses))
	for _, o := range orders {
		countByStatus[o.Status]++
	}
	data := make([]models.StatusCount, 0, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		data = append(data, models.StatusCount{Status: status, Count: countByStatus[status]})
	}
	return data, nil
}

// DashboardSummary returns today's order count, today's revenue (canceled
// orders excluded) and how many orders are still pending overall.
func (s *Store) DashboardSummary(ctx context.Context) (models.DashboardSummary, error) {
	if err := s.wait(ctx); err != nil {
		return models.DashboardSummary{}, err
	}
	orders, err := s.allOrders()
	if err != nil {
		return models.DashboardSummary{}, err
	}
	today := s.now().Format(dateLayout)
	var summary models.DashboardSummary
	for _, o := range orders {
		if o.CreatedAt.Format(dateLayout) == today {
			summary.TotalOrdersToday++
			if o.Status != models.OrderStatusCanceled {
				summary.RevenueToday += o.TotalAmount
			}
		}
		if o.Status == models.OrderStatusNew || o.Status == models.OrderStatusPreparing {
			summary.PendingOrders++
		}
	}
	return summary, nil
}

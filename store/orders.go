package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riquelima/gourmetgo/models"
)

// OrderFilters narrows FetchOrders. Zero-value fields are skipped.
type OrderFilters struct {
	Status models.OrderStatus
	// Date matches orders whose creation timestamp starts with the given
	// prefix, usually "2006-01-02".
	Date       string
	SearchTerm string
}

// FetchOrders returns orders newest-first, filtered by exact status, by
// creation-date prefix and by a case-insensitive search across customer
// name, order id and phone.
func (s *Store) FetchOrders(ctx context.Context, filters OrderFilters) ([]models.Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	query := s.db.Order("created_at DESC")
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	if filters.Date != "" {
		kept := orders[:0]
		for _, o := range orders {
			if strings.HasPrefix(o.CreatedAt.Format(time.RFC3339), filters.Date) {
				kept = append(kept, o)
			}
		}
		orders = kept
	}
	if filters.SearchTerm != "" {
		term := strings.ToLower(filters.SearchTerm)
		kept := orders[:0]
		for _, o := range orders {
			if strings.Contains(strings.ToLower(o.CustomerName), term) ||
				strings.Contains(strings.ToLower(o.ID), term) ||
				strings.Contains(o.CustomerPhone, filters.SearchTerm) {
				kept = append(kept, o)
			}
		}
		orders = kept
	}
	return orders, nil
}

func (s *Store) FetchOrderByID(ctx context.Context, id string) (models.Order, error) {
	if err := s.wait(ctx); err != nil {
		return models.Order{}, err
	}
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return models.Order{}, translate(err)
	}
	return order, nil
}

type OrderInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Items           []models.CartItem
	Notes           string
	UserID          string
}

// CreateOrder finalizes a cart into an order: the total is the item
// subtotal plus the delivery fee in force right now, the status starts at
// NEW and the timestamp and identity are assigned here. The total never
// changes afterwards.
func (s *Store) CreateOrder(ctx context.Context, input OrderInput) (models.Order, error) {
	if err := s.wait(ctx); err != nil {
		return models.Order{}, err
	}
	if input.CustomerName == "" || input.CustomerPhone == "" || input.CustomerAddress == "" || len(input.Items) == 0 {
		return models.Order{}, ErrInvalidOrder
	}
	var settings models.AppSettings
	if err := s.db.First(&settings).Error; err != nil {
		return models.Order{}, translate(err)
	}
	order := models.Order{
		ID:              s.newID(),
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		Items:           input.Items,
		Status:          models.OrderStatusNew,
		Notes:           input.Notes,
		CreatedAt:       s.now(),
		UserID:          input.UserID,
	}
	order.TotalAmount = order.Subtotal() + settings.DeliveryFeeFixed
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateOrderStatus overwrites the status field when the configured policy
// accepts the transition. The table is left untouched on any failure.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	if err := s.wait(ctx); err != nil {
		return models.Order{}, err
	}
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		return models.Order{}, translate(err)
	}
	if !s.policy.Allowed(order.Status, status) {
		return models.Order{}, fmt.Errorf("%w: %s to %s", ErrStatusNotAllowed, order.Status, status)
	}
	order.Status = status
	if err := s.db.Save(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

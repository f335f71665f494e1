package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"       // Order placed, awaiting the kitchen
	OrderStatusPreparing OrderStatus = "PREPARING" // Kitchen is working on it
	OrderStatusSent      OrderStatus = "SENT"      // Out for delivery
	OrderStatusDelivered OrderStatus = "DELIVERED" // Customer received the order
	OrderStatusCanceled  OrderStatus = "CANCELED"  // Canceled by staff
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusPreparing,
	OrderStatusSent,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusNew:
		return OrderStatusNew, nil
	case OrderStatusPreparing:
		return OrderStatusPreparing, nil
	case OrderStatusSent:
		return OrderStatusSent, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCanceled:
		return OrderStatusCanceled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	CustomerName    string      `gorm:"not null" json:"customerName"`
	CustomerPhone   string      `gorm:"not null" json:"customerPhone"`
	CustomerAddress string      `gorm:"not null" json:"customerAddress"`
	Items           []CartItem  `gorm:"serializer:json" json:"items"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);index" json:"status"`
	// TotalAmount is fixed when the order is created; later price or fee
	// changes never touch it.
	TotalAmount float64   `json:"totalAmount"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UserID      string    `json:"userId,omitempty"`
}

// Subtotal is the sum of line totals, without the delivery fee.
func (o Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Dish.Price * float64(item.Quantity)
	}
	return sum
}

// StatusPolicy decides which status transitions an attendant may apply.
type StatusPolicy interface {
	Allowed(from, to OrderStatus) bool
}

// AllowAnyStatus accepts every transition, including backwards jumps.
// This matches the attendant-override behaviour the product ships with.
type AllowAnyStatus struct{}

func (AllowAnyStatus) Allowed(from, to OrderStatus) bool { return true }

// ForwardOnlyStatus only accepts the forward path
// NEW, PREPARING, SENT, DELIVERED in order, and CANCELED while the order
// has not left the kitchen.
type ForwardOnlyStatus struct{}

func (ForwardOnlyStatus) Allowed(from, to OrderStatus) bool {
	if to == OrderStatusCanceled {
		return from == OrderStatusNew || from == OrderStatusPreparing
	}
	rank := map[OrderStatus]int{
		OrderStatusNew:       0,
		OrderStatusPreparing: 1,
		OrderStatusSent:      2,
		OrderStatusDelivered: 3,
	}
	rf, okFrom := rank[from]
	rt, okTo := rank[to]
	return okFrom && okTo && rt == rf+1
}

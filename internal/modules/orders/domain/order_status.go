package domain

import (
	"strings"

	"restaurantBackoffice/internal/shared/apperr"
)

// OrderStatus is the kitchen progress of an order. Any status may follow any
// other; no transition graph is enforced.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var allowedOrderStatuses = map[string]OrderStatus{
	string(OrderStatusPending):   OrderStatusPending,
	string(OrderStatusPreparing): OrderStatusPreparing,
	string(OrderStatusReady):     OrderStatusReady,
	string(OrderStatusServed):    OrderStatusServed,
	string(OrderStatusCancelled): OrderStatusCancelled,
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	if status, ok := allowedOrderStatuses[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return status, nil
	}
	return "", apperr.Invalid("order status %q must be one of pending, preparing, ready, served, cancelled", raw)
}

package models

import (
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusServed    OrderStatus = "SERVED"
	StatusPaid      OrderStatus = "PAID"
)

// statusChain is the full order lifecycle. Transitions only ever move one step
// forward along this chain, PAID is terminal.
var statusChain = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusServed, StatusPaid}

var (
	ErrInvalidTransition = errors.New("status transition is not the direct successor")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
)

type Order struct {
	Order_id     string      `json:"order_id"`
	Table_number int         `json:"table_number" validate:"min=1"`
	Items        []CartItem  `json:"items"`
	Status       OrderStatus `json:"status"`
	Total_amount float64     `json:"total_amount"`
	Timestamp    time.Time   `json:"timestamp"`
}

// ValidStatus reports whether s is one of the five lifecycle states.
func ValidStatus(s OrderStatus) bool {
	for _, st := range statusChain {
		if st == s {
			return true
		}
	}
	return false
}

// NextStatus returns the direct successor of s in the lifecycle, or false when
// s is terminal or unknown.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	for i, st := range statusChain {
		if st == s && i+1 < len(statusChain) {
			return statusChain[i+1], true
		}
	}
	return "", false
}

// Advance moves the order to target. Only the direct successor of the current
// status is accepted, there are no back-transitions and no skipping.
func (order *Order) Advance(target OrderStatus) error {
	if !ValidStatus(target) {
		return ErrUnknownStatus
	}
	next, ok := NextStatus(order.Status)
	if !ok || next != target {
		return ErrInvalidTransition
	}
	order.Status = target
	return nil
}

// NewOrder snapshots cart items into a pending order. The total is computed
// here, once, and is never recomputed afterwards.
func NewOrder(id string, tableNumber int, items []CartItem, timestamp time.Time) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	snapshot := make([]CartItem, len(items))
	copy(snapshot, items)

	var total float64
	for _, item := range snapshot {
		total += item.Price * float64(item.Quantity)
	}
	return Order{
		Order_id:     id,
		Table_number: tableNumber,
		Items:        snapshot,
		Status:       StatusPending,
		Total_amount: total,
		Timestamp:    timestamp,
	}, nil
}

// ShortRef is the short order reference shown on tickets and notifications,
// the last four characters of the order id.
func (order *Order) ShortRef() string {
	if len(order.Order_id) <= 4 {
		return order.Order_id
	}
	return order.Order_id[len(order.Order_id)-4:]
}

package database

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"tableswift/models"
)

var (
	ErrTableNotClosable = errors.New("table still has unfinished orders")
	ErrNoOrdersInBucket = errors.New("no orders in that status at this table")
)

// OrderStore keeps the live order list in memory. Orders are append-only: the
// only mutation after creation is the status walking forward along the
// lifecycle, and nothing is ever deleted (PAID orders just drop out of the
// kitchen projection). The mutex is here because gin serves requests
// concurrently, the store is the single shared-writer boundary.
type OrderStore struct {
	mu     sync.Mutex
	orders []models.Order
	lastId int64
}

var Orders = NewOrderStore()

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Place snapshots the given cart items into a new PENDING order. Ids are
// creation-time millis, bumped by one on collision so they stay strictly
// increasing in creation order.
func (s *OrderStore) Place(tableNumber int, items []models.CartItem) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	id := now.UnixMilli()
	if id <= s.lastId {
		id = s.lastId + 1
	}
	s.lastId = id

	order, err := models.NewOrder(strconv.FormatInt(id, 10), tableNumber, items, now)
	if err != nil {
		return models.Order{}, err
	}
	s.orders = append(s.orders, order)
	return order, nil
}

// List returns a snapshot copy of every order, all statuses included.
func (s *OrderStore) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *OrderStore) Get(orderId string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.Order_id == orderId {
			return order, true
		}
	}
	return models.Order{}, false
}

// AdvanceTable moves every order at the table currently in the from status to
// its direct successor, as one batch: a table's dishes are cooked and served
// together, not one by one. The final step (SERVED to PAID) additionally
// requires that nothing at the table is still pending, preparing or ready.
func (s *OrderStore) AdvanceTable(tableNumber int, from models.OrderStatus) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	to, ok := models.NextStatus(from)
	if !ok {
		return 0, models.ErrInvalidTransition
	}

	matched := 0
	for _, order := range s.orders {
		if order.Table_number != tableNumber {
			continue
		}
		switch order.Status {
		case from:
			matched++
		case models.StatusPending, models.StatusPreparing, models.StatusReady:
			if to == models.StatusPaid {
				return 0, ErrTableNotClosable
			}
		}
	}
	if matched == 0 {
		return 0, ErrNoOrdersInBucket
	}

	advanced := 0
	for i := range s.orders {
		if s.orders[i].Table_number != tableNumber || s.orders[i].Status != from {
			continue
		}
		if err := s.orders[i].Advance(to); err != nil {
			return advanced, err
		}
		advanced++
	}
	return advanced, nil
}

// CloseTable settles the bill: every SERVED order at the table becomes PAID.
func (s *OrderStore) CloseTable(tableNumber int) (int, error) {
	return s.AdvanceTable(tableNumber, models.StatusServed)
}

// Reset drops every order. Used by tests.
func (s *OrderStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.lastId = 0
}

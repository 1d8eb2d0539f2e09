package database

import (
	"sync"

	"tableswift/models"
)

// CartStore holds one open cart per table. Carts are working state only, they
// are never persisted: a cart either becomes an order at checkout or is
// abandoned with the session.
type CartStore struct {
	mu    sync.Mutex
	carts map[int]*models.Cart
}

var Carts = NewCartStore()

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[int]*models.Cart)}
}

func (s *CartStore) cart(tableNumber int) *models.Cart {
	cart, ok := s.carts[tableNumber]
	if !ok {
		cart = &models.Cart{Table_number: tableNumber}
		s.carts[tableNumber] = cart
	}
	return cart
}

// Get returns a snapshot copy of the table's cart.
func (s *CartStore) Get(tableNumber int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.cart(tableNumber))
}

func (s *CartStore) AddItem(tableNumber int, item models.MenuItem, notes string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(tableNumber)
	cart.AddItem(item, notes)
	return snapshot(cart)
}

func (s *CartStore) SetQuantity(tableNumber int, menuItemId string, quantity int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(tableNumber)
	cart.SetQuantity(menuItemId, quantity)
	return snapshot(cart)
}

func (s *CartStore) Clear(tableNumber int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(tableNumber).Clear()
}

// Take empties the cart and returns its lines, for checkout.
func (s *CartStore) Take(tableNumber int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(tableNumber)
	items := cart.Items
	cart.Items = nil
	return items
}

func snapshot(cart *models.Cart) models.Cart {
	out := models.Cart{Table_number: cart.Table_number}
	out.Items = make([]models.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}
